package purchase

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

func execute(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		in      string
		want    Item
		wantErr bool
	}{
		{in: "Watchmen=2", want: Item{Ref: "Watchmen", Quantity: 2}},
		{in: "7", want: Item{Ref: "7", Quantity: 1}},
		{in: " Saga = 3 ", want: Item{Ref: "Saga", Quantity: 3}},
		{in: "=2", wantErr: true},
		{in: "Maus=two", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseItem(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPurchase(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	comic, err := s.Catalog().Add(catalog.ComicInput{Title: "Watchmen", Price: decimal.RequireFromString("19.99")})
	require.NoError(t, err)
	_, err = s.Ledger().Create(comic.ID, 5)
	require.NoError(t, err)
	ann, err := s.Directory().Add("Ann", "")
	require.NoError(t, err)

	out, err := execute(t, app, "--customer", "1", "--item", "watchmen=2")
	require.NoError(t, err)
	assert.Contains(t, out, "39.98")
	assert.Contains(t, out, "Receipt ")

	assert.Equal(t, 3, s.Ledger().QuantityFor(comic.ID))
	orders := s.Orders().ForCustomer(ann.ID)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].Quantity)
}

func TestPurchasePartial(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	a, err := s.Catalog().Add(catalog.ComicInput{Title: "Maus", Price: decimal.NewFromInt(5)})
	require.NoError(t, err)
	b, err := s.Catalog().Add(catalog.ComicInput{Title: "Saga", Price: decimal.NewFromInt(7)})
	require.NoError(t, err)
	_, err = s.Ledger().Create(a.ID, 1)
	require.NoError(t, err)
	_, err = s.Ledger().Create(b.ID, 0)
	require.NoError(t, err)

	out, err := execute(t, app, "--item", "Maus", "--item", "Saga=1")
	var checkoutErr *errors.CheckoutError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, 1, checkoutErr.Committed)
	assert.Contains(t, out, "Maus")
	assert.Equal(t, 1, s.Orders().Len())
}

func TestPurchaseRejects(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	_, err := s.Catalog().Add(catalog.ComicInput{Title: "Maus", Price: decimal.NewFromInt(5)})
	require.NoError(t, err)

	_, err = execute(t, app)
	assert.True(t, errors.IsValidationError(err))

	_, err = execute(t, app, "--customer", "9", "--item", "Maus")
	assert.True(t, errors.IsNotFound(err))

	_, err = execute(t, app, "--item", "Bone")
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 0, s.Orders().Len())
}
