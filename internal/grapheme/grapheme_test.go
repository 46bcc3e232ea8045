package grapheme

import "testing"

func TestCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "abc", want: 3},
		{in: "éx", want: 2},
		{in: "π≈3", want: 3},
	}

	for _, tc := range cases {
		if got := Count(tc.in); got != tc.want {
			t.Fatalf("Count(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestWidth_WideClusters(t *testing.T) {
	if got := Width("ab"); got != 2 {
		t.Fatalf("Width(ab)=%d, want 2", got)
	}
	if got := Width("中"); got != 2 {
		t.Fatalf("Width(中)=%d, want 2", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{in: "abc", width: 3, want: "abc"},
		{in: "abcdef", width: 4, want: "abc…"},
		{in: "abc", width: 0, want: ""},
		{in: "中文字", width: 4, want: "中…"},
	}

	for _, tc := range cases {
		if got := Truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q,%d)=%q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
