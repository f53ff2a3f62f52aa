package discover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TFMV/surrealhcc/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	b := writeFile(t, dir, "src/main/java/B.java", "class B {}")
	a := writeFile(t, dir, "src/main/java/A.java", "class A {}")
	writeFile(t, dir, "README.md", "docs")
	writeFile(t, dir, ".Hidden.java", "class Hidden {}")
	writeFile(t, dir, ".idea/X.java", "class X {}")
	writeFile(t, dir, "target/classes/Gen.java", "class Gen {}")
	writeFile(t, dir, "build/Gen.java", "class Gen {}")

	files, err := discover.Files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestFiles_Gitignore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	writeFile(t, dir, ".gitignore", "vendor/\nLegacy.java\n")
	keep := writeFile(t, dir, "Keep.java", "class Keep {}")
	writeFile(t, dir, "Legacy.java", "class Legacy {}")
	writeFile(t, dir, "vendor/lib/V.java", "class V {}")

	files, err := discover.Files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestFiles_SingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "One.java", "class One {}")

	files, err := discover.Files(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	txt := writeFile(t, dir, "notes.txt", "x")
	_, err = discover.Files(txt)
	assert.Error(t, err)
}

func TestFiles_MissingRoot(t *testing.T) {
	t.Parallel()
	_, err := discover.Files(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
