package stock

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
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

func seed(t *testing.T, s *shop.Shop, title string) int {
	t.Helper()
	c, err := s.Catalog().Add(catalog.ComicInput{Title: title, Price: decimal.NewFromInt(4)})
	require.NoError(t, err)
	return c.ID
}

func TestStockLifecycle(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	id := seed(t, s, "Watchmen")

	out, err := execute(t, app, "create", "watchmen", "--quantity", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking 5 copies of Watchmen")

	out, err = execute(t, app, "add", "Watchmen", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Watchmen now has 8 in stock")

	out, err = execute(t, app, "remove", "1", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Watchmen now has 2 in stock")

	_, err = execute(t, app, "set", "1", "10")
	require.NoError(t, err)
	assert.Equal(t, 10, s.Ledger().QuantityFor(id))

	out, err = execute(t, app, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Stock record for comic 1 deleted")
	assert.Equal(t, constants.NotFoundQuantity, s.Ledger().QuantityFor(id))
}

func TestStockRejectsOverdraw(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	id := seed(t, s, "Maus")
	_, err := s.Ledger().Create(id, 1)
	require.NoError(t, err)

	_, err = execute(t, app, "remove", "maus", "2")
	assert.True(t, errors.IsStockError(err))
	assert.Equal(t, 1, s.Ledger().QuantityFor(id))

	_, err = execute(t, app, "add", "maus", "many")
	assert.True(t, errors.IsValidationError(err))
}

func TestStockErrors(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	seed(t, s, "Saga")

	_, err := execute(t, app, "create", "Nope")
	assert.True(t, errors.IsNotFound(err))

	_, err = execute(t, app, "show", "saga")
	assert.True(t, errors.IsNotFound(err))

	_, err = execute(t, app, "delete", "1")
	assert.True(t, errors.IsNotFound(err))
}

func TestListKeepsDeletedComics(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatJSON)
	id := seed(t, s, "Bone")
	_, err := s.Ledger().Create(id, 2)
	require.NoError(t, err)
	require.NoError(t, s.Catalog().Delete(id))

	out, err := execute(t, app, "list")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, constants.UnknownComicTitle, got[0]["title"])
	assert.EqualValues(t, 2, got[0]["quantity"])
}
