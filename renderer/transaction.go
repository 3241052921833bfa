package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/arbfolio"
)

// Transaction renders a transaction to a string.
func Transaction(tx arbfolio.Transaction) string {
	switch v := tx.Category.Swap.(type) {
	case arbfolio.SimpleSwap:
		verb := "Bought"
		if v.Direction == arbfolio.SwapSale {
			verb = "Sold"
		}
		return fmt.Sprintf("%s %s %s for %s", verb, v.Value, v.Token, arbfolio.FormatUSD(v.CostBasis))
	case arbfolio.TwoAssetSwap:
		return fmt.Sprintf("Swapped %s %s for %s %s (%s)", v.ValueSold, v.TokenSold, v.ValuePurchased, v.TokenPurchased, arbfolio.FormatUSD(v.CostBasis))
	case arbfolio.DebtSwap:
		return fmt.Sprintf("%s %s %s (%s %s)", v.Direction, v.Value, v.Token, v.DebtValue, v.DebtToken)
	}

	var legs []string
	for _, t := range tx.Transfers {
		legs = append(legs, fmt.Sprintf("%s %s", t.Signed(), t.Token))
	}
	return fmt.Sprintf("%s %s", tx.Category, strings.Join(legs, ", "))
}

// TransactionsMarkdown renders the list of classified transactions.
func TransactionsMarkdown(transactions []arbfolio.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Transaction | Category | Description |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			tx.Datetime,
			shortHash(tx.GroupID),
			tx.Category,
			Transaction(tx),
		)
	}
	return b.String()
}

// shortHash abbreviates long hashes, e.g. 0x5c50…2060.
func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}
	return h[:6] + "…" + h[len(h)-4:]
}
