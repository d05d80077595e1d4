package diag

import (
	"strings"
	"testing"
)

func setCulpritMarkers(t *testing.T, begin, end string) {
	t.Helper()
	oldBegin, oldEnd := culpritLineBegin, culpritLineEnd
	culpritLineBegin, culpritLineEnd = begin, end
	t.Cleanup(func() { culpritLineBegin, culpritLineEnd = oldBegin, oldEnd })
}

var contextShowTests = []struct {
	name    string
	context *Context
	want    string
}{
	{
		"single-line culprit",
		NewContext("[test]", "1 + 'a'", Ranging{4, 7}),
		"[test], line 1:\n  1 + <'a'>",
	},
	{
		"culprit at start of source",
		NewContext("[test]", "x = 5", Ranging{0, 1}),
		"[test], line 1:\n  <x> = 5",
	},
	{
		"zero-width culprit",
		NewContext("[test]", "floor(", PointRanging(6)),
		"[test], line 1:\n  floor(<^>",
	},
	{
		"culprit on second line",
		NewContext("[test]", "x\ny z", Ranging{2, 3}),
		"[test], line 2:\n  <y> z",
	},
}

func TestContextShow(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextShowTests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.context.Show("  "); got != test.want {
				t.Errorf("Show() -> %q, want %q", got, test.want)
			}
		})
	}
}

func TestContextShowCompact(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	c := NewContext("[test]", "1 + 'a'", Ranging{4, 7})
	want := "[test], line 1: 1 + <'a'>"
	if got := c.ShowCompact(" "); got != want {
		t.Errorf("ShowCompact() -> %q, want %q", got, want)
	}
}

func TestContextShowBadPosition(t *testing.T) {
	c := NewContext("[test]", "code", Ranging{-2, 1})
	if got := c.Show(""); !strings.Contains(got, "invalid position") {
		t.Errorf("Show() -> %q, want error about invalid position", got)
	}
	c = NewContext("[test]", "code", Ranging{-1, -1})
	if got := c.Show(""); !strings.Contains(got, "unknown position") {
		t.Errorf("Show() -> %q, want error about unknown position", got)
	}
}
