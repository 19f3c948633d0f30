package ratetable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := Default()
	require.False(t, tbl.Failed())
	assert.Equal(t, 8, tbl.Len())
	assert.Equal(t, []int{16, 32, 64, 128, 256, 512, 1024, 2048}, tbl.Rates())

	bw, ok := tbl.Lookup(1024)
	assert.True(t, ok)
	assert.Equal(t, 895, bw)

	_, ok = tbl.Lookup(1000)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	src := strings.Join([]string{
		"# rate:bandwidth",
		"",
		"32:42",
		"bad line",
		"64:0",
		" 1024 : 895 ",
		"abc:12",
	}, "\n")

	tbl := Parse(strings.NewReader(src))
	require.False(t, tbl.Failed())
	assert.Equal(t, 2, tbl.Len())
	assert.Len(t, tbl.Warnings(), 3)
	assert.Contains(t, tbl.Warnings()[0], "line 4")

	bw, ok := tbl.Lookup(1024)
	assert.True(t, ok)
	assert.Equal(t, 895, bw)
	_, ok = tbl.Lookup(64)
	assert.False(t, ok)
}

func TestParseEmpty(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"nothing", ""},
		{"comments only", "# nothing here\n\n"},
		{"all bad", "1:2:3\nx:y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := Parse(strings.NewReader(tt.src))
			assert.True(t, tbl.Failed())
			assert.Contains(t, tbl.Problem(), "empty")
			_, ok := tbl.Lookup(32)
			assert.False(t, ok)
			assert.Nil(t, tbl.Rates())
		})
	}
}

func TestNewAndFailed(t *testing.T) {
	assert.True(t, New(nil).Failed())
	assert.False(t, New(map[int]int{1024: 895}).Failed())

	f := Failed("gone")
	assert.True(t, f.Failed())
	assert.Equal(t, "gone", f.Problem())

	var nilTable *Table
	assert.True(t, nilTable.Failed())
	assert.Equal(t, 0, nilTable.Len())
}

func TestWarned(t *testing.T) {
	assert.True(t, Parse(strings.NewReader("1024:895\nbad\n")).Warned())
	assert.False(t, Parse(strings.NewReader("1024:895\n")).Warned())
	assert.False(t, Parse(strings.NewReader("bad\n")).Warned())
	assert.False(t, Default().Warned())
}
