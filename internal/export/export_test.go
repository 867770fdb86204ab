package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVWrapsAndEscapes(t *testing.T) {
	got := CSV(View{
		Columns: []string{"Title", "Status"},
		Rows: [][]string{
			{"Buy milk", "pending"},
			{`Say "hello", then leave`, "done"},
		},
	})

	want := "\"Title\",\"Status\"\n" +
		"\"Buy milk\",\"pending\"\n" +
		"\"Say \"\"hello\"\", then leave\",\"done\"\n"
	assert.Equal(t, want, got)
}

func TestCSVHeaderOnlyWhenNoRows(t *testing.T) {
	got := CSV(View{Columns: []string{"Title"}})
	assert.Equal(t, "\"Title\"\n", got)
}

func TestCSVPreservesRowOrder(t *testing.T) {
	got := CSV(View{
		Columns: []string{"Title"},
		Rows:    [][]string{{"c"}, {"a"}, {"b"}},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, []string{`"Title"`, `"c"`, `"a"`, `"b"`}, lines)
}

func TestHTMLEscapesCells(t *testing.T) {
	got := HTML(View{
		Columns: []string{"Title"},
		Rows:    [][]string{{"<script>alert(1)</script>"}},
	})

	assert.Contains(t, got, "&lt;script&gt;")
	assert.NotContains(t, got, "<script>alert")
	assert.Contains(t, got, "<th>Title</th>")
}
