package models

import "testing"

func TestAudioTipMatchesTitle(t *testing.T) {
	tip := AudioTip{Title: "Stay Hydrated"}

	cases := []struct {
		search string
		want   bool
	}{
		{"", true},
		{"   ", true},
		{"hydrated", true},
		{"STAY", true},
		{" stay ", true},
		{"sleep", false},
	}
	for _, tc := range cases {
		if got := tip.MatchesTitle(tc.search); got != tc.want {
			t.Errorf("MatchesTitle(%q): expected %v, got %v", tc.search, tc.want, got)
		}
	}
}
