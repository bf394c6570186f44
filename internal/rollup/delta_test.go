package rollup

import (
	"testing"
)

func TestComputeDeltas(t *testing.T) {
	tests := []struct {
		name    string
		current Totals
		base7   *Totals
		base30  *Totals
		want    Deltas
	}{
		{
			name:    "fresh item without any baseline",
			current: Totals{Views: 500, Likes: 20},
			want:    Deltas{},
		},
		{
			name:    "steady growth",
			current: Totals{Views: 180, Likes: 15},
			base7:   &Totals{Views: 100, Likes: 10},
			base30:  &Totals{Views: 40, Likes: 2},
			want:    Deltas{Views7d: 80, Likes7d: 5, Views30d: 140, Likes30d: 13},
		},
		{
			name:    "counter corrected downward is clamped to zero",
			current: Totals{Views: 290, Likes: 8},
			base7:   &Totals{Views: 300, Likes: 10},
			base30:  &Totals{Views: 250, Likes: 5},
			want:    Deltas{Views7d: 0, Likes7d: 0, Views30d: 40, Likes30d: 3},
		},
		{
			name:    "only 30d baseline present",
			current: Totals{Views: 120, Likes: 6},
			base30:  &Totals{Views: 100, Likes: 1},
			want:    Deltas{Views7d: 0, Likes7d: 0, Views30d: 20, Likes30d: 5},
		},
		{
			name:    "only 7d baseline present",
			current: Totals{Views: 120, Likes: 6},
			base7:   &Totals{Views: 110, Likes: 6},
			want:    Deltas{Views7d: 10},
		},
		{
			name:    "unchanged totals yield zero deltas",
			current: Totals{Views: 77, Likes: 3},
			base7:   &Totals{Views: 77, Likes: 3},
			base30:  &Totals{Views: 77, Likes: 3},
			want:    Deltas{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDeltas(tt.current, tt.base7, tt.base30)
			if got != tt.want {
				t.Errorf("ComputeDeltas() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeDeltas_NeverNegative(t *testing.T) {
	cases := []Totals{
		{Views: 0, Likes: 0},
		{Views: 1, Likes: 1},
		{Views: 1000, Likes: 500},
	}
	base := &Totals{Views: 999999, Likes: 999999}

	for _, current := range cases {
		got := ComputeDeltas(current, base, base)
		if got.Views7d < 0 || got.Likes7d < 0 || got.Views30d < 0 || got.Likes30d < 0 {
			t.Errorf("negative delta for current=%+v: %+v", current, got)
		}
	}
}
