// Package records defines the persisted record types of the comic store and
// the codecs that turn each record into one delimited line and back.
//
// Fields are joined with a bare comma and never escaped, so a value that
// contains a comma corrupts its row on the next load. Callers that accept
// free text reject commas before building a record (see ValidateText).
package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// Comic is one sellable catalog item.
type Comic struct {
	ID      int             `json:"id" yaml:"id"`
	Title   string          `json:"title" yaml:"title"`
	Creator string          `json:"creator" yaml:"creator"`
	Price   decimal.Decimal `json:"price" yaml:"price"`
	Tag     *string         `json:"tag,omitempty" yaml:"tag,omitempty"`         // genre or classification
	Year    *int            `json:"year,omitempty" yaml:"year,omitempty"`       // release year
	OnHand  *int            `json:"on_hand,omitempty" yaml:"on_hand,omitempty"` // shelf count noted by staff, independent of the ledger
}

// Stock is the ledger entry for one comic. ComicID is the record identifier.
type Stock struct {
	ComicID  int `json:"comic_id" yaml:"comic_id"`
	Quantity int `json:"quantity" yaml:"quantity"`
}

// Customer is a party that can place orders.
type Customer struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Contact string `json:"contact" yaml:"contact"`
}

// Order is one committed cart line. Every line of a checkout shares a ReceiptID.
type Order struct {
	ID         int             `json:"id" yaml:"id"`
	ReceiptID  string          `json:"receipt_id" yaml:"receipt_id"`
	CustomerID int             `json:"customer_id" yaml:"customer_id"`
	ComicID    int             `json:"comic_id" yaml:"comic_id"`
	Title      string          `json:"title" yaml:"title"`
	Quantity   int             `json:"quantity" yaml:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" yaml:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total" yaml:"line_total"`
}

// Credential is the single admin login.
type Credential struct {
	Username string
	Password string
}

// ValidateText rejects values the line format cannot store.
func ValidateText(field, value string) error {
	if strings.Contains(value, constants.FieldDelimiter) {
		return errors.NewValidationError(field, value, "must not contain a comma")
	}
	if strings.ContainsAny(value, "\r\n") {
		return errors.NewValidationError(field, value, "must be a single line")
	}
	return nil
}

// ValidatePrice rejects a price that is not positive or that carries more
// decimal places than a line stores.
func ValidatePrice(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return errors.NewValidationError(field, d.String(), "must be greater than zero")
	}
	if !fitsMoneyScale(d) {
		return errors.NewValidationError(field, d.String(),
			fmt.Sprintf("must have at most %d decimal places", constants.PriceDecimals))
	}
	return nil
}

func fitsMoneyScale(d decimal.Decimal) bool {
	return d.Round(constants.PriceDecimals).Equal(d)
}

// FormatPrice renders money the way it is persisted.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(constants.PriceDecimals)
}

// splitFields splits line and checks its arity against any of want.
func splitFields(format, line string, want ...int) ([]string, error) {
	fields := strings.Split(line, constants.FieldDelimiter)
	for _, n := range want {
		if len(fields) == n {
			return fields, nil
		}
	}
	return nil, errors.NewParseError(format, "", arityMessage(len(fields), want), errors.ErrMalformed)
}

func arityMessage(got int, want []int) string {
	parts := make([]string, len(want))
	for i, n := range want {
		parts[i] = strconv.Itoa(n)
	}
	return "expected " + strings.Join(parts, " or ") + " fields, got " + strconv.Itoa(got)
}

func parseInt(format, field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.NewParseError(format, "", field+" is not an integer: "+strconv.Quote(value), err)
	}
	return n, nil
}

func parseOptionalInt(format, field, value string) (*int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, err := parseInt(format, field, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseDecimal(format, field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, errors.NewParseError(format, "", field+" is not a number: "+strconv.Quote(value), err)
	}
	return d, nil
}

// parseMoney parses an amount that FormatPrice would write back unchanged.
func parseMoney(format, field, value string) (decimal.Decimal, error) {
	d, err := parseDecimal(format, field, value)
	if err != nil {
		return decimal.Zero, err
	}
	if !fitsMoneyScale(d) {
		return decimal.Zero, errors.NewParseError(format, "",
			fmt.Sprintf("%s has more than %d decimal places: %q", field, constants.PriceDecimals, value), errors.ErrMalformed)
	}
	return d, nil
}

func join(fields ...string) string {
	return strings.Join(fields, constants.FieldDelimiter)
}

func optionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
