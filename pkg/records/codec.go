package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/ptr"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// ComicCodec reads the legacy 4-field and the 7-field comic layouts and
// always writes 7 fields.
type ComicCodec struct{}

// Decode parses one comic line.
func (ComicCodec) Decode(line string) (Comic, error) {
	f, err := splitFields("comic", line, constants.LegacyComicFields, constants.ComicFields)
	if err != nil {
		return Comic{}, err
	}

	id, err := parseInt("comic", "id", f[0])
	if err != nil {
		return Comic{}, err
	}
	price, err := parseMoney("comic", "price", f[3])
	if err != nil {
		return Comic{}, err
	}
	if !price.IsPositive() {
		return Comic{}, errors.NewParseError("comic", "", "price must be greater than zero: "+strconv.Quote(f[3]), errors.ErrMalformed)
	}
	c := Comic{ID: id, Title: f[1], Creator: f[2], Price: price}

	if len(f) == constants.ComicFields {
		c.Tag = ptr.NonEmpty(strings.TrimSpace(f[4]))
		if c.Year, err = parseOptionalInt("comic", "year", f[5]); err != nil {
			return Comic{}, err
		}
		if c.OnHand, err = parseOptionalInt("comic", "on_hand", f[6]); err != nil {
			return Comic{}, err
		}
	}
	return c, nil
}

// Encode formats c as one line.
func (ComicCodec) Encode(c Comic) string {
	return join(
		strconv.Itoa(c.ID),
		c.Title,
		c.Creator,
		FormatPrice(c.Price),
		optionalString(c.Tag),
		optionalInt(c.Year),
		optionalInt(c.OnHand),
	)
}

// ID returns the comic id.
func (ComicCodec) ID(c Comic) int { return c.ID }

// CustomerCodec reads and writes id,name,contact.
type CustomerCodec struct{}

// Decode parses one customer line.
func (CustomerCodec) Decode(line string) (Customer, error) {
	f, err := splitFields("customer", line, constants.CustomerFields)
	if err != nil {
		return Customer{}, err
	}
	id, err := parseInt("customer", "id", f[0])
	if err != nil {
		return Customer{}, err
	}
	return Customer{ID: id, Name: f[1], Contact: f[2]}, nil
}

// Encode formats c as one line.
func (CustomerCodec) Encode(c Customer) string {
	return join(strconv.Itoa(c.ID), c.Name, c.Contact)
}

// ID returns the customer id.
func (CustomerCodec) ID(c Customer) int { return c.ID }

// StockCodec reads and writes comicID,quantity.
type StockCodec struct{}

// Decode parses one stock line.
func (StockCodec) Decode(line string) (Stock, error) {
	f, err := splitFields("stock", line, constants.StockFields)
	if err != nil {
		return Stock{}, err
	}
	comicID, err := parseInt("stock", "comic_id", f[0])
	if err != nil {
		return Stock{}, err
	}
	qty, err := parseInt("stock", "quantity", f[1])
	if err != nil {
		return Stock{}, err
	}
	return Stock{ComicID: comicID, Quantity: qty}, nil
}

// Encode formats s as one line.
func (StockCodec) Encode(s Stock) string {
	return join(strconv.Itoa(s.ComicID), strconv.Itoa(s.Quantity))
}

// ID returns the tracked comic id.
func (StockCodec) ID(s Stock) int { return s.ComicID }

// OrderKey selects which field identifies an order record.
type OrderKey int

const (
	// KeyByOrderID gives every committed line its own identifier.
	KeyByOrderID OrderKey = iota
	// KeyByComicID identifies orders by the purchased comic, as older stores did.
	// Two orders for the same comic then share an identifier.
	KeyByComicID
)

// String returns the config spelling of k.
func (k OrderKey) String() string {
	if k == KeyByComicID {
		return "comic"
	}
	return "order"
}

// ParseOrderKey parses "order" or "comic".
func ParseOrderKey(s string) (OrderKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "order":
		return KeyByOrderID, nil
	case "comic":
		return KeyByComicID, nil
	default:
		return KeyByOrderID, errors.NewConfigError("orders.key_by", fmt.Sprintf("unknown value %q (want order or comic)", s), errors.ErrInvalidInput)
	}
}

// OrderCodec reads and writes the 8-field order layout.
type OrderCodec struct {
	KeyBy OrderKey
}

// Decode parses one order line.
func (OrderCodec) Decode(line string) (Order, error) {
	f, err := splitFields("order", line, constants.OrderFields)
	if err != nil {
		return Order{}, err
	}

	var o Order
	if o.ID, err = parseInt("order", "id", f[0]); err != nil {
		return Order{}, err
	}
	o.ReceiptID = strings.TrimSpace(f[1])
	if o.CustomerID, err = parseInt("order", "customer_id", f[2]); err != nil {
		return Order{}, err
	}
	if o.ComicID, err = parseInt("order", "comic_id", f[3]); err != nil {
		return Order{}, err
	}
	o.Title = f[4]
	if o.Quantity, err = parseInt("order", "quantity", f[5]); err != nil {
		return Order{}, err
	}
	if o.UnitPrice, err = parseMoney("order", "unit_price", f[6]); err != nil {
		return Order{}, err
	}
	if o.LineTotal, err = parseMoney("order", "line_total", f[7]); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Encode formats o as one line.
func (OrderCodec) Encode(o Order) string {
	return join(
		strconv.Itoa(o.ID),
		o.ReceiptID,
		strconv.Itoa(o.CustomerID),
		strconv.Itoa(o.ComicID),
		o.Title,
		strconv.Itoa(o.Quantity),
		FormatPrice(o.UnitPrice),
		FormatPrice(o.LineTotal),
	)
}

// ID returns the order id or the comic id, depending on KeyBy.
func (c OrderCodec) ID(o Order) int {
	if c.KeyBy == KeyByComicID {
		return o.ComicID
	}
	return o.ID
}

// ParseCredential parses a username,password line. Both fields are trimmed
// and neither may be blank.
func ParseCredential(line string) (Credential, error) {
	f, err := splitFields("credential", line, constants.CredentialFields)
	if err != nil {
		return Credential{}, err
	}
	cred := Credential{Username: strings.TrimSpace(f[0]), Password: strings.TrimSpace(f[1])}
	if cred.Username == "" || cred.Password == "" {
		return Credential{}, errors.NewParseError("credential", "", "username and password must not be blank", errors.ErrMalformed)
	}
	return cred, nil
}
