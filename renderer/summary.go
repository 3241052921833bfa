package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/arbfolio"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// categoryCount counts the transactions of one category.
type categoryCount struct {
	Category string
	Count    int
	Volume   decimal.Decimal // sum of the absolute cost basis
}

// countPerCategory counts transactions per category, in order of first appearance.
func countPerCategory(transactions []arbfolio.Transaction) []*categoryCount {
	var counts []*categoryCount
	index := make(map[string]*categoryCount)
	for _, tx := range transactions {
		name := tx.Category.String()
		c, ok := index[name]
		if !ok {
			c = &categoryCount{Category: name}
			index[name] = c
			counts = append(counts, c)
		}
		c.Count++
		c.Volume = c.Volume.Add(tx.CostBasis.Abs())
	}
	return counts
}

// SummaryMarkdown renders an overview of a processed activity: transactions
// per category and open positions.
func SummaryMarkdown(r *arbfolio.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Activity Summary")
	if len(r.Transactions) == 0 {
		doc.PlainText("No transaction.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d net transfers in %d transactions, from %s to %s.",
		len(r.Transfers),
		len(r.Transactions),
		r.Transactions[0].Datetime,
		r.Transactions[len(r.Transactions)-1].Datetime,
	))

	doc.H2("Transactions per Category")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Count", "Volume"},
	}
	for _, c := range countPerCategory(r.Transactions) {
		table.Rows = append(table.Rows, []string{c.Category, strconv.Itoa(c.Count), arbfolio.FormatUSD(c.Volume)})
	}
	doc.Table(table)

	var b strings.Builder
	b.WriteString(doc.String())
	ConditionalBlock(&b, func(w io.Writer) bool { return renderHoldings(w, r.Holdings) })
	return b.String()
}

// renderHoldings writes the open positions, if any.
func renderHoldings(w io.Writer, holdings []arbfolio.Holding) bool {
	doc := md.NewMarkdown(w)
	doc.H2("Open Positions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Token", "Amount", "Cost", "Unit Cost"},
	}
	for _, h := range holdings {
		unit := decimal.Zero
		if h.Amount.IsPositive() {
			unit = h.Cost.Div(h.Amount)
		}
		table.Rows = append(table.Rows, []string{h.Token.String(), h.Amount.String(), arbfolio.FormatUSD(h.Cost), arbfolio.FormatUSD(unit)})
	}
	doc.Table(table)
	fmt.Fprint(w, "\n", doc.String())
	return len(holdings) > 0
}

// HoldingsMarkdown renders the open positions.
func HoldingsMarkdown(holdings []arbfolio.Holding) string {
	var b strings.Builder
	b.WriteString("# Holdings\n")
	ConditionalBlock(&b, func(w io.Writer) bool { return renderHoldings(w, holdings) })
	if len(holdings) == 0 {
		b.WriteString("\nNo open position.\n")
	}
	return b.String()
}
