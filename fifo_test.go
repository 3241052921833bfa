package arbfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

type wantSale struct {
	amount, costBasis, proceeds, gain float64
	acquired                          string
}

func assertSales(t *testing.T, got []Sale, want []wantSale) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d sales, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		g := got[i]
		assertDecimal(t, "amount", g.Amount, D(w.amount))
		assertDecimal(t, "cost basis", g.CostBasis, D(w.costBasis))
		assertDecimal(t, "proceeds", g.Proceeds, D(w.proceeds))
		assertDecimal(t, "gain", g.Gain, D(w.gain))
		if g.Acquired != w.acquired {
			t.Errorf("acquired = %q, want %q", g.Acquired, w.acquired)
		}
	}
}

func TestFIFOSales(t *testing.T) {
	tests := []struct {
		name      string
		transfers []Transfer
		want      []wantSale
	}{
		{
			name: "gain on a partial sale",
			transfers: []Transfer{
				at(withUSD(tr("0xa", link, 10), 100), "d1"),
				at(withUSD(tr("0xb", link, -4), -80), "d2"),
			},
			want: []wantSale{{amount: 4, costBasis: 40, proceeds: 80, gain: 40, acquired: "d1"}},
		},
		{
			name: "a sale spanning two lots",
			transfers: []Transfer{
				at(withUSD(tr("0xa", link, 4), 40), "d1"),
				at(withUSD(tr("0xb", link, 6), 90), "d2"),
				at(withUSD(tr("0xc", link, -8), -160), "d3"),
			},
			want: []wantSale{
				{amount: 4, costBasis: 40, proceeds: 80, gain: 40, acquired: "d1"},
				{amount: 4, costBasis: 60, proceeds: 80, gain: 20, acquired: "d2"},
			},
		},
		{
			name: "a sale without any lot has no cost basis",
			transfers: []Transfer{
				withUSD(tr("0xa", link, -2), -30),
			},
			want: []wantSale{{amount: 2, costBasis: 0, proceeds: 30, gain: 30}},
		},
		{
			name: "a sale exceeding lots is completed without cost basis",
			transfers: []Transfer{
				at(withUSD(tr("0xa", link, 1), 10), "d1"),
				withUSD(tr("0xb", link, -3), -60),
			},
			want: []wantSale{
				{amount: 1, costBasis: 10, proceeds: 20, gain: 10, acquired: "d1"},
				{amount: 2, costBasis: 0, proceeds: 40, gain: 40},
			},
		},
		{
			name: "uncovered sale of 3 for $10",
			transfers: []Transfer{
				withUSD(tr("0xa", link, -3), -10),
			},
			want: []wantSale{{amount: 3, costBasis: 0, proceeds: 10, gain: 10}},
		},
		{
			name: "an acquisition without usd is not tracked",
			transfers: []Transfer{
				tr("0xa", link, 5),
				withUSD(tr("0xb", link, -5), -50),
			},
			want: []wantSale{{amount: 5, costBasis: 0, proceeds: 50, gain: 50}},
		},
		{
			name: "a sale without usd has no proceeds",
			transfers: []Transfer{
				at(withUSD(tr("0xa", link, 5), 50), "d1"),
				tr("0xb", link, -5),
			},
			want: []wantSale{{amount: 5, costBasis: 50, proceeds: 0, gain: -50, acquired: "d1"}},
		},
		{
			name: "tokens have separate queues",
			transfers: []Transfer{
				at(withUSD(tr("0xa", link, 1), 10), "d1"),
				at(withUSD(tr("0xa", weth, 1), 2000), "d1"),
				withUSD(tr("0xb", weth, -1), -2500),
			},
			want: []wantSale{{amount: 1, costBasis: 2000, proceeds: 2500, gain: 500, acquired: "d1"}},
		},
		{
			name: "an exact sale empties the lot",
			transfers: []Transfer{
				at(withUSD(tr("0xa", link, 2), 20), "d1"),
				withUSD(tr("0xb", link, -2), -10),
				withUSD(tr("0xc", link, -1), -5),
			},
			want: []wantSale{
				{amount: 2, costBasis: 20, proceeds: 10, gain: -10, acquired: "d1"},
				{amount: 1, costBasis: 0, proceeds: 5, gain: 5},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertSales(t, FIFOSales(tc.transfers), tc.want)
		})
	}
}

func TestFIFO_ProceedsAddUp(t *testing.T) {
	f := NewFIFO()
	for _, d := range []string{"d1", "d2", "d3"} {
		f.Process(at(withUSD(tr("0xa", link, 1), 1), d))
	}
	sales := f.Process(withUSD(tr("0xb", link, -3), -10))
	if len(sales) != 3 {
		t.Fatalf("got %d sales, want 3", len(sales))
	}

	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Proceeds)
	}
	assertDecimal(t, "total proceeds", total, D(10))
	assertDecimal(t, "first proceeds", sales[0].Proceeds, decimal.RequireFromString("3.3333333333333333"))
}

func TestFIFO_Sale(t *testing.T) {
	f := NewFIFO()
	f.Process(at(withUSD(tr("0xa", link, 10), 100), "d1"))
	sales := f.Process(at(withUSD(tr("0xb", link, -4), -80), "d2"))

	if len(sales) != 1 {
		t.Fatalf("got %d sales, want 1", len(sales))
	}
	s := sales[0]
	if s.GroupID != "0xb" || s.Datetime != "d2" || !s.Token.Equal(link) {
		t.Errorf("sale = %s %s %s, want 0xb d2 LINK", s.GroupID, s.Datetime, s.Token)
	}

	amount, cost := f.Open(link)
	assertDecimal(t, "open amount", amount, D(6))
	assertDecimal(t, "open cost", cost, D(60))
}

func TestLots_Sell(t *testing.T) {
	l := lots{
		{Datetime: "d1", Amount: D(3), Cost: D(30)},
		{Datetime: "d2", Amount: D(3), Cost: D(60)},
	}
	var amounts, costs []decimal.Decimal
	l = l.sell(D(4), func(amount, cost decimal.Decimal, acquired string) {
		amounts = append(amounts, amount)
		costs = append(costs, cost)
	})

	if len(amounts) != 2 {
		t.Fatalf("got %d matches, want 2", len(amounts))
	}
	assertDecimal(t, "first amount", amounts[0], D(3))
	assertDecimal(t, "first cost", costs[0], D(30))
	assertDecimal(t, "second amount", amounts[1], D(1))
	assertDecimal(t, "second cost", costs[1], D(20))

	if len(l) != 1 {
		t.Fatalf("got %d lots, want 1", len(l))
	}
	amount, cost := l.total()
	assertDecimal(t, "remaining amount", amount, D(2))
	assertDecimal(t, "remaining cost", cost, D(40))
}
