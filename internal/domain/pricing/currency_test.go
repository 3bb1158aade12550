package pricing

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "$0"},
		{amount: 999, want: "$999"},
		{amount: 1234, want: "$1,234"},
		{amount: 14705, want: "$14,705"},
		{amount: 1234567, want: "$1,234,567"},
		{amount: 1234.6, want: "$1,235"},
		{amount: -5000, want: "-$5,000"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Fatalf("FormatCurrency(%v): expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}
