package report

import (
	"fmt"
	"reflect"
	"testing"
)

type testDiag struct {
	span Span
	msg  string
}

func (d testDiag) Span() Span { return d.span }

func (d testDiag) Header(at LineColumn) string {
	return fmt.Sprintf("%s at %v", d.msg, at)
}

func TestRenderSingleLine(t *testing.T) {
	got := Render("10 - 5", testDiag{span: NewSpan(5, 6), msg: "bad digit"})
	want := []string{
		"bad digit at 1:6",
		"  10 - 5",
		"       ^",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendering mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderSingleLineNotFirst(t *testing.T) {
	got := Render("10 +\n20 + 99", testDiag{span: NewSpan(5, 12), msg: "oops"})
	want := []string{
		"oops at 2:1",
		"  20 + 99",
		"  ^^^^^^^",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendering mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderPastEndOfInput(t *testing.T) {
	// a missing-syntax diagnostic points one byte past the last token
	got := Render("92", testDiag{span: NewSpan(2, 3), msg: "missing `;`"})
	want := []string{
		"missing `;` at 1:3",
		"  92",
		"    ^",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendering mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderZeroLengthSpan(t *testing.T) {
	got := Render("92", testDiag{span: NewSpan(0, 0), msg: "empty"})
	want := []string{
		"empty at 1:1",
		"  92",
		"  ^",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendering mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderMultiLine(t *testing.T) {
	got := Render("{ 1 +\n2 }", testDiag{span: NewSpan(0, 9), msg: "bad block"})
	want := []string{
		"bad block at 1:1",
		"  vvvvv",
		"  { 1 +",
		"  2 }",
		"  ^^^",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendering mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderMultiLineWithMiddle(t *testing.T) {
	got := Render("a\nbb\nccc", testDiag{span: NewSpan(0, 8), msg: "all of it"})
	want := []string{
		"all of it at 1:1",
		"  v",
		"  a",
		"  bb",
		"  ccc",
		"  ^^^",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendering mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestPositionOf(t *testing.T) {
	input := "ab\ncd\n\nef"

	cases := []struct {
		offset uint32
		want   LineColumn
	}{
		{0, LineColumn{Line: 0, Col: 0}},
		{1, LineColumn{Line: 0, Col: 1}},
		{2, LineColumn{Line: 0, Col: 2}},
		{3, LineColumn{Line: 1, Col: 0}},
		{6, LineColumn{Line: 2, Col: 0}},
		{7, LineColumn{Line: 3, Col: 0}},
		{9, LineColumn{Line: 3, Col: 2}},
	}

	for _, c := range cases {
		if got := PositionOf(input, c.offset); got != c.want {
			t.Fatalf("offset %d: expected %+v, got %+v", c.offset, c.want, got)
		}
	}
}

func TestLineColumnDisplaysOneBased(t *testing.T) {
	if got := (LineColumn{Line: 0, Col: 3}).String(); got != "1:4" {
		t.Fatalf("expected 1:4, got %q", got)
	}
}

func TestSpanOver(t *testing.T) {
	s := SpanOver(NewSpan(2, 4), NewSpan(8, 10))
	if s != NewSpan(2, 10) {
		t.Fatalf("unexpected span %+v", s)
	}
	if s.Len() != 8 {
		t.Fatalf("unexpected length %d", s.Len())
	}
}
