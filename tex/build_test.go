package tex

import (
	"strings"
	"testing"
)

func TestBuild_PlainConcatenation(t *testing.T) {
	tr := NewTree()
	tr.Insert(NewLeaf("x"))
	tr.Insert(NewLeaf("+"))
	tr.Insert(NewLeaf("2"))

	if got := tr.Build(BuildOptions{}); got != "x+2" {
		t.Fatalf("build=%q, want x+2", got)
	}
}

func TestBuild_EmptyTree_Placeholder(t *testing.T) {
	tr := NewTree()

	if got := tr.Build(BuildOptions{}); got != `\Box` {
		t.Fatalf("build=%q, want \\Box", got)
	}
	if got := tr.Build(BuildOptions{NoPlaceholder: true}); got != "" {
		t.Fatalf("build=%q, want empty", got)
	}
}

func TestBuild_EmptyFunctionArguments_Placeholder(t *testing.T) {
	tr := NewTree()
	tr.Insert(NewFunction(`\frac`, []Delimiter{Braces, Braces}))

	if got := tr.Build(BuildOptions{}); got != `\frac{\Box}{\Box}` {
		t.Fatalf("build=%q, want \\frac{\\Box}{\\Box}", got)
	}
}

func TestBuild_SeparatorAfterBareCommand(t *testing.T) {
	cases := []struct {
		name  string
		texts []string
		want  string
	}{
		{name: "command then letter", texts: []string{`\sin`, "x"}, want: `\sin x`},
		{name: "command then digit", texts: []string{`\pi`, "2"}, want: `\pi 2`},
		{name: "command then operator", texts: []string{`\sin`, "("}, want: `\sin(`},
		{name: "command then command", texts: []string{`\sin`, `\cos`}, want: `\sin\cos`},
		{name: "closed command then letter", texts: []string{`\sin(`, "x"}, want: `\sin(x`},
		{name: "letter then letter", texts: []string{"x", "y"}, want: "xy"},
		{name: "chain", texts: []string{"2", `\pi`, "r"}, want: `2\pi r`},
	}

	for _, tc := range cases {
		tr := NewTree()
		for _, s := range tc.texts {
			tr.Insert(NewLeaf(s))
		}
		if got := tr.Build(BuildOptions{}); got != tc.want {
			t.Fatalf("%s: build=%q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuild_ActiveCursor_EmitsColoredGlyph(t *testing.T) {
	tr := settledTree("x", "+")
	tr.Seek(1)

	got := tr.Build(BuildOptions{CursorColor: testColor})
	want := `x\textcolor{#3377ff}{\cursor}+`
	if got != want {
		t.Fatalf("build=%q, want %q", got, want)
	}
}

func TestBuild_CursorGlyph_NoSeparatorNoise(t *testing.T) {
	// The glyph output ends in `}` and starts with `\`, so it must never
	// trigger the command/alphanumeric separator on either side.
	tr := settledTree(`\sin`, "x")
	tr.Seek(1)

	got := tr.Build(BuildOptions{CursorColor: testColor})
	want := `\sin\textcolor{#3377ff}{\cursor}x`
	if got != want {
		t.Fatalf("build=%q, want %q", got, want)
	}
}

func TestBuild_CursorInNestedArgument(t *testing.T) {
	tr := NewTree()
	fn := NewFunction(`\frac`, []Delimiter{Braces, Braces})
	tr.Insert(fn)

	arg := fn.Arg(0)
	arg.Insert(NewLeaf("1"))
	arg.SetCursor()

	got := tr.Build(BuildOptions{CursorColor: testColor})
	want := `\frac{1\textcolor{#3377ff}{\cursor}}{\Box}`
	if got != want {
		t.Fatalf("build=%q, want %q", got, want)
	}
}

func TestBuild_EmptySettledTree_GlyphOnly(t *testing.T) {
	tr := NewTree()
	tr.SetCursor()

	got := tr.Build(BuildOptions{CursorColor: testColor})
	if got != `\textcolor{#3377ff}{\cursor}` {
		t.Fatalf("build=%q, want bare cursor glyph", got)
	}
	if strings.Contains(got, Placeholder) {
		t.Fatalf("settled empty tree must not render the placeholder")
	}
}

func TestBuild_ActiveCursorWithoutColor_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	tr := NewTree()
	tr.SetCursor()
	tr.Build(BuildOptions{})
}

func TestEndsWithBareCommand(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: `\sin`, want: true},
		{in: `\pi`, want: true},
		{in: `x\cdot`, want: true},
		{in: `\sin(`, want: false},
		{in: `\frac{\Box}{\Box}`, want: false},
		{in: `x`, want: false},
		{in: ``, want: false},
		{in: `\`, want: false},
	}

	for _, tc := range cases {
		if got := endsWithBareCommand(tc.in); got != tc.want {
			t.Fatalf("endsWithBareCommand(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
