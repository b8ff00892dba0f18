// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetricPx(t *testing.T) {
	m := Metric{PxPerDp: 2}
	tests := []struct {
		v    Value
		want int
	}{
		{Px(10), 10},
		{Px(10.4), 10},
		{Dp(10), 20},
		{Dp(12.3), 25},
		{Dp(-3), -6},
	}
	for _, test := range tests {
		if got := m.Px(test.v); got != test.want {
			t.Errorf("%v: got %d px, want %d", test.v, got, test.want)
		}
	}
}

func TestZeroMetric(t *testing.T) {
	// A zero metric converts dp 1:1 instead of collapsing
	// thresholds to nothing.
	var m Metric
	if got := m.Px(Dp(25)); got != 25 {
		t.Errorf("zero metric Px(25dp) = %d, want 25", got)
	}
}
