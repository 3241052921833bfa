package arbfolio

import (
	"errors"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	table := CategoryTable{
		"0xswap":                 "Swap",
		"0xtrade":                "Trade",
		"0xdrop":                 "Airdrop",
		"0xspam":                 "Ignore",
		"0xmove":                 "Transfer",
		NormalizeAddress(router): "Swap",
		pool:                     "Transfer",
	}

	tests := []struct {
		name  string
		group []Transfer
		want  Category
	}{
		{
			name:  "no entry is unknown",
			group: []Transfer{from(tr("0xnone", weth, 1), "0x3333333333333333333333333333333333333333")},
			want:  Category{Kind: KindUnknown},
		},
		{
			name:  "empty group is unknown",
			group: nil,
			want:  Category{Kind: KindUnknown},
		},
		{
			name:  "flat category by group id",
			group: []Transfer{tr("0xtrade", weth, 1)},
			want:  Category{Kind: KindTrade},
		},
		{
			name:  "airdrop",
			group: []Transfer{tr("0xdrop", link, 1)},
			want:  Category{Kind: KindAirdrop},
		},
		{
			name:  "ignore",
			group: []Transfer{tr("0xspam", link, 1)},
			want:  Category{Kind: KindIgnore},
		},
		{
			name:  "group id takes precedence over counterparty",
			group: []Transfer{from(tr("0xmove", weth, 1), router)},
			want:  Category{Kind: KindTransfer},
		},
		{
			name:  "counterparty match, case insensitive",
			group: []Transfer{from(tr("0xnone", weth, 1), "0x7A250D5630B4CF539739DF2C5DACB4C659F2488D")},
			want:  Category{Kind: KindSwap, Swap: UnknownSwap{}},
		},
		{
			name: "first counterparty in transfer order wins",
			group: []Transfer{
				from(tr("0xnone", weth, -1), pool),
				from(tr("0xnone", link, 100), router),
			},
			want: Category{Kind: KindTransfer},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.group, table)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassify_ConfigurationError(t *testing.T) {
	for _, name := range []string{"Swapp", "swap", "Unknown", ""} {
		_, err := Classify([]Transfer{tr("0xa", weth, 1)}, CategoryTable{"0xa": name})
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("Classify() with category %q error = %v, want %v", name, err, ErrConfiguration)
		}
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("Classify() error %v is not a *ConfigError", err)
		}
		if cerr.Key != "0xa" || cerr.Value != name {
			t.Errorf("ConfigError = %q[%q], want %q[%q]", cerr.Key, cerr.Value, "0xa", name)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindSwap, KindTrade, KindTransfer, KindAirdrop, KindIgnore} {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v, want %q", k, got, err, k)
		}
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Category{Kind: KindTrade}, "Trade"},
		{Category{Kind: KindSwap, Swap: TwoAssetSwap{}}, "Swap(TwoAsset)"},
		{Category{Kind: KindSwap, Swap: SimpleSwap{}}, "Swap(Simple)"},
		{Category{Kind: KindSwap, Swap: DebtSwap{}}, "Swap(Debt)"},
		{Category{Kind: KindSwap, Swap: UnknownSwap{}}, "Swap(UnknownSwap)"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
