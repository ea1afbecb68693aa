// Package directory is the repository of customers.
package directory

import (
	"strings"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

const resource = "customer"

// Directory holds every customer.
type Directory struct {
	repo *repository.Repository[records.Customer]
}

// New opens the directory stored at path.
func New(store repository.Storage, path string, opts ...repository.Option) (*Directory, error) {
	opts = append([]repository.Option{repository.WithName(resource)}, opts...)
	repo, err := repository.New[records.Customer](store, path, records.CustomerCodec{}, opts...)
	if err != nil {
		return nil, err
	}
	return &Directory{repo: repo}, nil
}

// CustomerPatch changes the non-nil fields of a customer.
type CustomerPatch struct {
	Name    *string
	Contact *string
}

// Add stores a new customer under the next identifier.
func (d *Directory) Add(name, contact string) (records.Customer, error) {
	if err := errors.Join(validateName(name), records.ValidateText("contact", contact)); err != nil {
		return records.Customer{}, err
	}
	return d.repo.Insert(func(id int) (records.Customer, error) {
		return records.Customer{
			ID:      id,
			Name:    strings.TrimSpace(name),
			Contact: strings.TrimSpace(contact),
		}, nil
	})
}

// Update applies p to the customer with id.
func (d *Directory) Update(id int, p CustomerPatch) (records.Customer, error) {
	if p.Name == nil && p.Contact == nil {
		return records.Customer{}, errors.NewValidationError("", nil, "nothing to update")
	}
	var errs []error
	if p.Name != nil {
		errs = append(errs, validateName(*p.Name))
	}
	if p.Contact != nil {
		errs = append(errs, records.ValidateText("contact", *p.Contact))
	}
	if err := errors.Join(errs...); err != nil {
		return records.Customer{}, err
	}

	return d.repo.Update(id, func(c *records.Customer) error {
		if p.Name != nil {
			c.Name = strings.TrimSpace(*p.Name)
		}
		if p.Contact != nil {
			c.Contact = strings.TrimSpace(*p.Contact)
		}
		return nil
	})
}

// Delete removes the customer with id.
func (d *Directory) Delete(id int) error {
	return d.repo.Delete(id)
}

// FindByID returns the customer with id.
func (d *Directory) FindByID(id int) (records.Customer, error) {
	return d.repo.FindByID(id)
}

// FindByName returns the first customer whose name matches under case folding.
func (d *Directory) FindByName(name string) (records.Customer, error) {
	name = strings.TrimSpace(name)
	if c, ok := d.repo.Find(func(rec records.Customer) bool { return fold.Equal(rec.Name, name) }); ok {
		return c, nil
	}
	return records.Customer{}, errors.NewNotFoundError(resource, name)
}

// List returns every customer in insertion order.
func (d *Directory) List() []records.Customer { return d.repo.List() }

// Len returns the number of customers.
func (d *Directory) Len() int { return d.repo.Len() }

// NextID returns the identifier the next Add would use.
func (d *Directory) NextID() int { return d.repo.NextID() }

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("name", name, "must not be empty")
	}
	return records.ValidateText("name", name)
}
