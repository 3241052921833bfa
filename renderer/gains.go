package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/arbfolio"
	"github.com/shopspring/decimal"
)

// tokenGains sums the sales of one token.
type tokenGains struct {
	Token     arbfolio.Token
	Sales     int
	Amount    decimal.Decimal
	Uncovered decimal.Decimal // amount sold without any lot
	Proceeds  decimal.Decimal
	CostBasis decimal.Decimal
	Gain      decimal.Decimal
}

// gainsPerToken groups sales by token, in order of first sale.
func gainsPerToken(sales []arbfolio.Sale) []*tokenGains {
	var gains []*tokenGains
	index := make(map[string]*tokenGains)
	for _, s := range sales {
		g, ok := index[s.Token.Key()]
		if !ok {
			g = &tokenGains{Token: s.Token}
			index[s.Token.Key()] = g
			gains = append(gains, g)
		}
		g.Sales++
		g.Amount = g.Amount.Add(s.Amount)
		if s.Acquired == "" {
			g.Uncovered = g.Uncovered.Add(s.Amount)
		}
		g.Proceeds = g.Proceeds.Add(s.Proceeds)
		g.CostBasis = g.CostBasis.Add(s.CostBasis)
		g.Gain = g.Gain.Add(s.Gain)
	}
	return gains
}

// GainsMarkdown renders the realized gains per token.
func GainsMarkdown(sales []arbfolio.Sale) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Gains (FIFO)\n\n")
	if len(sales) == 0 {
		fmt.Fprint(&b, "No sale.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "From %s to %s.\n\n", sales[0].Datetime, sales[len(sales)-1].Datetime)

	fmt.Fprint(&b, "## Gains per Token\n\n")
	fmt.Fprintln(&b, "| Token | Sales | Amount | Proceeds | Cost Basis | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	var proceeds, costBasis, gain decimal.Decimal
	var uncovered []*tokenGains
	for _, g := range gainsPerToken(sales) {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			g.Token,
			g.Sales,
			g.Amount,
			arbfolio.FormatUSD(g.Proceeds),
			arbfolio.FormatUSD(g.CostBasis),
			arbfolio.FormatSignedUSD(g.Gain),
		)
		proceeds = proceeds.Add(g.Proceeds)
		costBasis = costBasis.Add(g.CostBasis)
		gain = gain.Add(g.Gain)
		if !g.Uncovered.IsZero() {
			uncovered = append(uncovered, g)
		}
	}
	fmt.Fprintf(&b, "| **%s** | | | **%s** | **%s** | **%s** |\n",
		"Total",
		arbfolio.FormatUSD(proceeds),
		arbfolio.FormatUSD(costBasis),
		arbfolio.FormatSignedUSD(gain),
	)

	if len(uncovered) > 0 {
		fmt.Fprint(&b, "\n## Sales without Cost Basis\n\n")
		fmt.Fprint(&b, "These amounts were sold without any known acquisition, their cost basis is zero.\n\n")
		for _, g := range uncovered {
			fmt.Fprintf(&b, "- %s %s\n", g.Uncovered, g.Token)
		}
	}
	return b.String()
}
