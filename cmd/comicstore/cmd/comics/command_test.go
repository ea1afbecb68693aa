package comics

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
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
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

func TestAddAndShow(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)

	out, err := execute(t, app, "add", "--title", "Watchmen", "--creator", "Alan Moore", "--price", "19.99", "--year", "1986")
	require.NoError(t, err)
	assert.Contains(t, out, "Comic 1 added")
	assert.Contains(t, out, "Watchmen")

	comic, err := s.Catalog().FindByID(1)
	require.NoError(t, err)
	assert.True(t, comic.Price.Equal(decimal.RequireFromString("19.99")))
	require.NotNil(t, comic.Year)
	assert.Equal(t, 1986, *comic.Year)
	assert.Nil(t, comic.Tag)

	out, err = execute(t, app, "show", "WATCHMEN")
	require.NoError(t, err)
	assert.Contains(t, out, "Alan Moore")
}

func TestAddRequiresTitleAndPrice(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)

	_, err := execute(t, app, "add", "--title", "Saga")
	require.Error(t, err)
	assert.Equal(t, 0, s.Catalog().Len())

	_, err = execute(t, app, "add", "--title", "Saga", "--price", "0")
	assert.True(t, errors.IsValidationError(err))

	_, err = execute(t, app, "add", "--title", "Saga, Vol 1", "--price", "9.99")
	assert.True(t, errors.IsValidationError(err))
}

func TestListJSON(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatJSON)
	for _, title := range []string{"Watchmen", "Saga", "Maus"} {
		_, err := s.Catalog().Add(catalog.ComicInput{Title: title, Price: decimal.NewFromInt(10)})
		require.NoError(t, err)
	}

	out, err := execute(t, app, "list", "--limit", "2")
	require.NoError(t, err)

	var got []records.Comic
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Watchmen", got[0].Title)
	assert.Equal(t, "Saga", got[1].Title)

	out, err = execute(t, app, "list", "--search", "MAU")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Maus", got[0].Title)
}

func TestUpdateAndDelete(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	_, err := s.Catalog().Add(catalog.ComicInput{Title: "Saga", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	out, err := execute(t, app, "update", "saga", "--price", "12.50", "--tag", "space")
	require.NoError(t, err)
	assert.Contains(t, out, "Comic 1 updated")

	comic, err := s.Catalog().FindByID(1)
	require.NoError(t, err)
	assert.True(t, comic.Price.Equal(decimal.RequireFromString("12.5")))
	require.NotNil(t, comic.Tag)
	assert.Equal(t, "space", *comic.Tag)

	_, err = execute(t, app, "update", "saga")
	assert.True(t, errors.IsValidationError(err))

	out, err = execute(t, app, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Comic 1 deleted")
	assert.Equal(t, 0, s.Catalog().Len())

	_, err = execute(t, app, "delete", "1")
	assert.True(t, errors.IsNotFound(err))
}

func TestSearch(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)
	_, err := s.Catalog().Add(catalog.ComicInput{Title: "Watchmen", Creator: "Alan Moore", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)

	out, err := execute(t, app, "search", "moore")
	require.NoError(t, err)
	assert.Contains(t, out, "Watchmen")
}

func TestListMatch(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatJSON)
	for _, title := range []string{"X-Men", "X-Force", "Saga"} {
		_, err := s.Catalog().Add(catalog.ComicInput{Title: title, Price: decimal.NewFromInt(3)})
		require.NoError(t, err)
	}

	out, err := execute(t, app, "list", "--match", "x-*")
	require.NoError(t, err)
	var got []records.Comic
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "X-Men", got[0].Title)

	_, err = execute(t, app, "list", "--match", "(")
	assert.True(t, errors.IsValidationError(err))
}
