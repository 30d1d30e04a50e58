package render

import (
	"go/ast"
	"go/parser"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseGoList parses a []string literal back into its element values.
func parseGoList(t *testing.T, src string) []string {
	t.Helper()
	expr, err := parser.ParseExpr(src)
	require.NoError(t, err, "literal does not parse:\n%s", src)

	lit, ok := expr.(*ast.CompositeLit)
	require.True(t, ok, "expected composite literal, got %T", expr)

	var out []string
	for _, elt := range lit.Elts {
		bl, ok := elt.(*ast.BasicLit)
		require.True(t, ok, "expected string element, got %T", elt)
		s, err := strconv.Unquote(bl.Value)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestGoList_Format(t *testing.T) {
	got := GoList([]string{"case1", "case3"})
	want := "[]string{\n\t\"case1\",\n\t\"case3\",\n}"
	assert.Equal(t, want, got)
}

func TestGoList_EscapesQuotesOnly(t *testing.T) {
	got := GoList([]string{`say_"hi"_*+?`})
	assert.Equal(t, "[]string{\n\t\"say_\\\"hi\\\"_*+?\",\n}", got)
}

func TestGoList_OneElementPerLine(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	lines := strings.Split(GoList(names), "\n")
	require.Len(t, lines, len(names)+2)
	assert.Equal(t, "[]string{", lines[0])
	assert.Equal(t, "}", lines[len(lines)-1])
	for i, name := range names {
		assert.Equal(t, "\t\""+name+"\",", lines[i+1])
	}
}

func TestGoList_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"single", []string{"leafCase"}},
		{"order kept", []string{"zeta", "alpha", "mid"}},
		{"duplicates kept", []string{"dup", "other", "dup"}},
		{"quotes", []string{`SELECT_"a"_FROM_t`, `"`, `""`}},
		{"sql-ish", []string{"select_*_from_t_where_a=1", "count(*)", "a,b;c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGoList(t, GoList(tt.names))
			if diff := cmp.Diff(tt.names, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNoMatches(t *testing.T) {
	msg := NoMatches("TestQueriesSimple")
	assert.Contains(t, msg, "TestQueriesSimple")
	assert.Contains(t, msg, "No subtest names found")
}

func TestLiteral_Render(t *testing.T) {
	r := NewLiteral(MonoTheme())

	assert.Equal(t, NoMatches("TestX"), r.Render("TestX", nil))
	assert.Equal(t, NoMatches("TestX"), r.Render("TestX", []string{}))
	assert.Equal(t, GoList([]string{"a"}), r.Render("TestX", []string{"a"}))
}

func TestLiteral_ListIsNeverStyled(t *testing.T) {
	var r Renderer = NewLiteral(DefaultTheme())
	out := r.Render("TestX", []string{"a", "b"})
	assert.Equal(t, GoList([]string{"a", "b"}), out)
	assert.NotContains(t, out, "\033[")
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, "mono", ThemeFor(false, "").Name)
	assert.Equal(t, "mono", ThemeFor(true, "1").Name)
	assert.Equal(t, "default", ThemeFor(true, "").Name)
}
