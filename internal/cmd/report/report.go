// Package report writes a store snapshot as a markdown document.
package report

import (
	"fmt"
	"io"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
)

// Title heads every report.
const Title = "Comic Store Snapshot"

// Write renders snap to w. Empty sections say so instead of printing an empty table.
func Write(w io.Writer, snap shop.Snapshot, generated time.Time) error {
	doc := md.NewMarkdown(w)

	doc.H1(Title).LF()
	doc.PlainTextf("Generated %s.", generated.UTC().Format(time.RFC3339)).LF().LF()
	doc.BulletList(
		fmt.Sprintf("%s comics", md.Bold(fmt.Sprint(len(snap.Comics)))),
		fmt.Sprintf("%s customers", md.Bold(fmt.Sprint(len(snap.Customers)))),
		fmt.Sprintf("%s stock records", md.Bold(fmt.Sprint(len(snap.Stock)))),
		fmt.Sprintf("%s order lines", md.Bold(fmt.Sprint(len(snap.Orders)))),
	).LF()

	section(doc, "Comics", table.ComicsToTableData(snap.Comics, true))
	section(doc, "Customers", table.CustomersToTableData(snap.Customers))
	section(doc, "Stock", table.StockToTableData(snap.Stock))
	section(doc, "Orders", table.OrdersToTableData(snap.Orders, true))

	return doc.Build()
}

func section(doc *md.Markdown, heading string, data table.Data) {
	doc.H2(heading).LF()
	if len(data.Rows) == 0 {
		doc.PlainText(md.Italic("None.")).LF().LF()
		return
	}
	doc.Table(md.TableSet{Header: data.Headers, Rows: data.Rows}).LF()
}
