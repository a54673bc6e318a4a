package bunsetsu

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExec_WalkDirShouldMatchTextDocuments(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	files := []string{"a.txt", "b.md", "c.text", "d.png"}
	for _, f := range files {
		assert.NoError(os.WriteFile(filepath.Join(dir, f), []byte("吾輩は猫である。"), 0644))
	}
	sub := filepath.Join(dir, "sub")
	assert.NoError(os.Mkdir(sub, 0755))
	assert.NoError(os.WriteFile(filepath.Join(sub, "e.txt"), []byte("今日はいい天気です。"), 0644))

	done := make(chan interface{})
	defer close(done)

	paths, errc := walkDir(done, dir, []string{".txt", ".text", ".md"})

	var got []string
	for path := range paths {
		rel, err := filepath.Rel(dir, path)
		assert.NoError(err)
		got = append(got, rel)
	}
	assert.NoError(<-errc)

	sort.Strings(got)
	assert.Equal([]string{"a.txt", "b.md", "c.text", filepath.Join("sub", "e.txt")}, got)
}

func TestExec_ShouldCheckFileExtensions(t *testing.T) {
	exts := []string{".txt", ".text", ".md"}

	testCases := []struct {
		ext  string
		want bool
	}{
		{".txt", true},
		{".text", true},
		{".md", true},
		{".TXT", false},
		{".png", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, isValidExtension(tc.ext, exts), "extension %q", tc.ext)
	}
}
