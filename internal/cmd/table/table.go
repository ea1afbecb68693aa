// Package table turns store records into rows for tabular output.
package table

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cart"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/ledger"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Placeholder fills cells whose value is absent.
const Placeholder = "-"

// ComicsToTableData converts comics to table format. wide adds the optional fields.
func ComicsToTableData(comics []records.Comic, wide bool) Data {
	headers := []string{"ID", "Title", "Creator", "Price"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Tag", "Year", "On Hand")
		align = append(align, AlignLeft, AlignRight, AlignRight)
	}

	rows := make([][]string, 0, len(comics))
	for _, c := range comics {
		row := []string{
			strconv.Itoa(c.ID),
			c.Title,
			orPlaceholder(c.Creator),
			FormatMoney(c.Price),
		}
		if wide {
			row = append(row, optionalString(c.Tag), optionalInt(c.Year), optionalInt(c.OnHand))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// ComicToTableData renders one comic as property/value pairs.
func ComicToTableData(c records.Comic) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.Itoa(c.ID)},
			{"Title", c.Title},
			{"Creator", orPlaceholder(c.Creator)},
			{"Price", FormatMoney(c.Price)},
			{"Tag", optionalString(c.Tag)},
			{"Year", optionalInt(c.Year)},
			{"On Hand", optionalInt(c.OnHand)},
		},
	}
}

// CustomersToTableData converts customers to table format.
func CustomersToTableData(customers []records.Customer) Data {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, orPlaceholder(c.Contact)})
	}
	return Data{
		Headers:         []string{"ID", "Name", "Contact"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}

// StockToTableData converts ledger entries, already joined with titles, to table format.
func StockToTableData(entries []ledger.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.ComicID), e.Title, strconv.Itoa(e.Quantity)})
	}
	return Data{
		Headers:         []string{"Comic ID", "Title", "Quantity"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight},
	}
}

// OrdersToTableData converts committed orders to table format. wide adds
// the receipt and customer columns.
func OrdersToTableData(orders []records.Order, wide bool) Data {
	headers := []string{"ID", "Comic ID", "Title", "Qty", "Unit Price", "Line Total"}
	align := []Align{AlignRight, AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Customer", "Receipt")
		align = append(align, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		row := []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.ComicID),
			o.Title,
			strconv.Itoa(o.Quantity),
			FormatMoney(o.UnitPrice),
			FormatMoney(o.LineTotal),
		}
		if wide {
			row = append(row, customerLabel(o.CustomerID), orPlaceholder(o.ReceiptID))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CartToTableData converts pending cart lines to table format. Line totals
// use the price captured when each line was added.
func CartToTableData(items []cart.LineItem) Data {
	rows := make([][]string, 0, len(items)+1)
	total := decimal.Zero
	for i, item := range items {
		line := item.Comic.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(item.Comic.ID),
			item.Comic.Title,
			strconv.Itoa(item.Quantity),
			FormatMoney(item.Comic.Price),
			FormatMoney(line),
		})
	}
	rows = append(rows, []string{"", "", "Subtotal", "", "", FormatMoney(total)})

	return Data{
		Headers:         []string{"#", "Comic ID", "Title", "Qty", "Price", "Line Total"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight},
	}
}

// ReceiptToTableData renders a receipt as its committed lines plus a total row.
func ReceiptToTableData(r *cart.Receipt) Data {
	data := OrdersToTableData(r.Lines, false)
	data.Rows = append(data.Rows, []string{"", "", "Total", "", "", FormatMoney(r.Total)})
	return data
}

// FormatMoney prints an amount with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return records.FormatPrice(d)
}

func customerLabel(id int) string {
	if id == constants.WalkInCustomerID {
		return "walk-in"
	}
	return strconv.Itoa(id)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func optionalString(p *string) string {
	if p == nil {
		return Placeholder
	}
	return orPlaceholder(*p)
}

func optionalInt(p *int) string {
	if p == nil {
		return Placeholder
	}
	return strconv.Itoa(*p)
}
