package ledger

import (
	"math"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/flatfile"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

const stockPath = "data/stock.txt"

type fakeCatalog map[int]string

func (f fakeCatalog) Exists(id int) bool {
	_, ok := f[id]
	return ok
}

func (f fakeCatalog) FindByID(id int) (records.Comic, error) {
	title, ok := f[id]
	if !ok {
		return records.Comic{}, errors.NewNotFoundError("comic", "x")
	}
	return records.Comic{ID: id, Title: title}, nil
}

func newTestLedger(t *testing.T, content string, catalog ComicChecker) (*Ledger, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, stockPath, []byte(content), 0o644))
	}
	l, err := New(flatfile.New(fs), stockPath, catalog, repository.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return l, fs
}

func TestCreate(t *testing.T) {
	l, fs := newTestLedger(t, "1,5\n", nil)

	s, err := l.Create(2, 0)
	require.NoError(t, err)
	assert.Equal(t, records.Stock{ComicID: 2, Quantity: 0}, s)

	raw, err := afero.ReadFile(fs, stockPath)
	require.NoError(t, err)
	assert.Equal(t, "1,5\n2,0\n", string(raw))

	t.Run("duplicate", func(t *testing.T) {
		_, err := l.Create(1, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrDuplicateStock)
		assert.Equal(t, 5, l.QuantityFor(1))
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := l.Create(3, -1)
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, l.Tracks(3))
	})
}

func TestCreateChecksCatalog(t *testing.T) {
	l, _ := newTestLedger(t, "", fakeCatalog{1: "Watchmen"})

	_, err := l.Create(1, 2)
	require.NoError(t, err)

	_, err = l.Create(9, 2)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 1, l.Len())
}

func TestAddStock(t *testing.T) {
	l, _ := newTestLedger(t, "1,5\n", nil)

	s, err := l.AddStock(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, s.Quantity)

	for _, amount := range []int{0, -4, math.MaxInt, math.MaxInt - 7} {
		_, err := l.AddStock(1, amount)
		assert.ErrorIs(t, err, errors.ErrInvalidAmount)
	}
	assert.Equal(t, 8, l.QuantityFor(1))

	s, err = l.AddStock(1, math.MaxInt-8)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, s.Quantity)

	_, err = l.AddStock(7, 1)
	assert.True(t, errors.IsNotFound(err))
}

func TestRemoveStock(t *testing.T) {
	tests := []struct {
		name    string
		amount  int
		wantErr error
		wantQty int
	}{
		{"partial", 2, nil, 3},
		{"everything", 5, nil, 0},
		{"too many", 6, errors.ErrInsufficientStock, 5},
		{"zero", 0, errors.ErrInvalidAmount, 5},
		{"negative", -1, errors.ErrInvalidAmount, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(t, "1,5\n", nil)
			_, err := l.RemoveStock(1, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var stockErr *errors.StockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, 5, stockErr.Available)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantQty, l.QuantityFor(1))
		})
	}
}

func TestSetQuantity(t *testing.T) {
	l, _ := newTestLedger(t, "1,5\n", nil)

	s, err := l.SetQuantity(1, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Quantity)

	_, err = l.SetQuantity(1, -1)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 12, l.QuantityFor(1))

	_, err = l.SetQuantity(4, 1)
	assert.True(t, errors.IsNotFound(err))
}

func TestQuantityQueries(t *testing.T) {
	l, _ := newTestLedger(t, "1,5\n2,0\n", nil)

	assert.Equal(t, 5, l.QuantityFor(1))
	assert.Equal(t, -1, l.QuantityFor(3))
	assert.True(t, l.HasSufficientStock(1, 5))
	assert.False(t, l.HasSufficientStock(1, 6))
	assert.True(t, l.HasSufficientStock(2, 0))
	assert.False(t, l.HasSufficientStock(3, 0))

	s, err := l.FindByComicID(2)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Quantity)
}

func TestEntries(t *testing.T) {
	l, _ := newTestLedger(t, "1,5\n2,1\n", nil)

	entries := l.Entries(fakeCatalog{1: "Watchmen"})
	require.Len(t, entries, 2)
	assert.Equal(t, "Watchmen", entries[0].Title)
	assert.Equal(t, "Unknown Comic", entries[1].Title)
	assert.Equal(t, 1, entries[1].Quantity)

	require.NoError(t, l.Delete(2))
	assert.Len(t, l.List(), 1)
}
