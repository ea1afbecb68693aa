package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/ptr"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// ComicInput holds the fields of a new comic.
type ComicInput struct {
	Title   string
	Creator string
	Price   decimal.Decimal
	Tag     *string
	Year    *int
	OnHand  *int
}

// Validate checks every field of in.
func (in ComicInput) Validate() error {
	if err := validateTitle(in.Title); err != nil {
		return err
	}
	return errors.Join(
		records.ValidateText("creator", in.Creator),
		validatePrice(in.Price),
		validateTag(in.Tag),
		validateCount("year", in.Year),
		validateCount("on_hand", in.OnHand),
	)
}

// ComicPatch changes the non-nil fields of a comic.
type ComicPatch struct {
	Title   *string
	Creator *string
	Price   *decimal.Decimal
	Tag     *string // an empty string clears the tag
	Year    *int
	OnHand  *int
}

// Empty reports whether p changes nothing.
func (p ComicPatch) Empty() bool {
	return p.Title == nil && p.Creator == nil && p.Price == nil &&
		p.Tag == nil && p.Year == nil && p.OnHand == nil
}

// Validate checks every field p sets.
func (p ComicPatch) Validate() error {
	if p.Empty() {
		return errors.NewValidationError("", nil, "nothing to update")
	}
	var errs []error
	if p.Title != nil {
		errs = append(errs, validateTitle(*p.Title))
	}
	if p.Creator != nil {
		errs = append(errs, records.ValidateText("creator", *p.Creator))
	}
	if p.Price != nil {
		errs = append(errs, validatePrice(*p.Price))
	}
	errs = append(errs,
		validateTag(p.Tag),
		validateCount("year", p.Year),
		validateCount("on_hand", p.OnHand),
	)
	return errors.Join(errs...)
}

func (p ComicPatch) apply(c *records.Comic) {
	if p.Title != nil {
		c.Title = strings.TrimSpace(*p.Title)
	}
	if p.Creator != nil {
		c.Creator = strings.TrimSpace(*p.Creator)
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Tag != nil {
		c.Tag = normalizeTag(p.Tag)
	}
	if p.Year != nil {
		c.Year = ptr.Clone(p.Year)
	}
	if p.OnHand != nil {
		c.OnHand = ptr.Clone(p.OnHand)
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title", title, "must not be empty")
	}
	return records.ValidateText("title", title)
}

func validatePrice(price decimal.Decimal) error {
	return records.ValidatePrice("price", price)
}

func validateTag(tag *string) error {
	if tag == nil {
		return nil
	}
	return records.ValidateText("tag", *tag)
}

func validateCount(field string, n *int) error {
	if n != nil && *n < 0 {
		return errors.NewValidationError(field, *n, "must not be negative")
	}
	return nil
}

func normalizeTag(tag *string) *string {
	if tag == nil {
		return nil
	}
	return ptr.NonEmpty(strings.TrimSpace(*tag))
}
