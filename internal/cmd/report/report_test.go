package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/ledger"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

func TestWrite(t *testing.T) {
	snap := shop.Snapshot{
		Comics:    []records.Comic{{ID: 1, Title: "Watchmen", Creator: "Moore", Price: decimal.NewFromInt(20)}},
		Customers: []records.Customer{{ID: 1, Name: "Ann", Contact: "ann@example.com"}},
		Stock:     []ledger.Entry{{Stock: records.Stock{ComicID: 1, Quantity: 4}, Title: "Watchmen"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))

	out := buf.String()
	assert.Contains(t, out, "# "+Title)
	assert.Contains(t, out, "2026-01-02T03:04:05Z")
	assert.Contains(t, out, "## Comics")
	assert.Contains(t, out, "Watchmen")
	assert.Contains(t, out, "ann@example.com")
	assert.Contains(t, out, "## Orders")
	assert.Contains(t, out, "*None.*")
}
