package handlers

import "testing"

func TestDiscountedAmount(t *testing.T) {
	cases := []struct {
		amount   uint
		discount uint
		want     int64
	}{
		{1499, 0, 1499},
		{1499, 20, 1199},
		{1000, 50, 500},
		{1000, 100, 0},
	}

	for _, tc := range cases {
		got := discountedAmount(tc.amount, tc.discount)
		if got != tc.want {
			t.Errorf("discountedAmount(%d, %d) = %d, want %d", tc.amount, tc.discount, got, tc.want)
		}
	}
}
