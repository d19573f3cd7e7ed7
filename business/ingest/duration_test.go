package ingest

import "testing"

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT4M13S", 253},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT10M", 600},
		{"PT2H", 7200},
		{"PT0S", 0},
		{"", 0},
		{"4M13S", 0},
		{"PT", 0},
		{"P1DT2H", 0},
		{"garbage", 0},
	}

	for _, tc := range cases {
		if got := parseISODuration(tc.in); got != tc.want {
			t.Errorf("parseISODuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
