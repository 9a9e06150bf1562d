package highlight

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func plain() *Highlighter {
	s := lipgloss.NewStyle()
	return &Highlighter{
		Keyword:    s,
		Identifier: s,
		String:     s,
		Number:     s,
		Operator:   s,
		Comment:    s,
		Error:      s,
	}
}

func tag(name string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string {
		return "<" + name + ">" + s + "</" + name + ">"
	})
}

func TestHighlightPlainKeepsSource(t *testing.T) {
	src := "SELECT a, 'x' FROM t WHERE b >= 1.5 -- done\n"
	if got := plain().Highlight(src); got != src {
		t.Errorf("Highlight() = %q, want %q", got, src)
	}
}

func TestHighlightClasses(t *testing.T) {
	h := plain()
	h.Keyword = tag("k")
	h.String = tag("s")
	h.Number = tag("n")

	got := h.Highlight("SELECT a FROM t WHERE b = 'x' AND c = 2")
	want := "<k>SELECT</k> a <k>FROM</k> t <k>WHERE</k> b = <s>'x'</s> <k>AND</k> c = <n>2</n>"
	if got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestHighlightIdentifiersAreNotKeywords(t *testing.T) {
	h := plain()
	h.Identifier = tag("i")
	got := h.Highlight("SELECT token, count FROM users")
	for _, id := range []string{"token", "count", "users"} {
		if !strings.Contains(got, "<i>"+id+"</i>") {
			t.Errorf("Highlight() = %q, missing identifier %q", got, id)
		}
	}
	if strings.Contains(got, "<i>SELECT</i>") {
		t.Errorf("keyword styled as identifier: %q", got)
	}
}

func TestUnrecognized(t *testing.T) {
	h := plain()
	h.Error = tag("e")
	if got := h.Unrecognized("not cql"); got != "<e>not cql</e>" {
		t.Errorf("Unrecognized() = %q", got)
	}
}

func TestNew(t *testing.T) {
	h := New()
	if h == nil {
		t.Fatal("New() returned nil")
	}
	if got := h.Highlight(""); got != "" {
		t.Errorf("Highlight(\"\") = %q", got)
	}
}
