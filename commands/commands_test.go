package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"pdftoolbox/pagerange"
	"pdftoolbox/pdf"
	"pdftoolbox/pdf/pdftest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := pdftest.Write(t, dir, "a.pdf", 1)
	b := pdftest.Write(t, dir, "b.pdf", 2)
	out := filepath.Join(dir, "merged.pdf")

	stdout, err := run(t, "merge", "-o", out, a, b, a, filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ignoring 2 duplicate or non-PDF argument(s)")
	assert.Contains(t, stdout, "Successfully merged 2 files (3 pages)")

	count, err := pdf.PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMergeCommandNeedsTwoFiles(t *testing.T) {
	dir := t.TempDir()
	a := pdftest.Write(t, dir, "a.pdf", 1)

	_, err := run(t, "merge", "-o", filepath.Join(dir, "merged.pdf"), a, a)
	assert.ErrorIs(t, err, pdf.ErrNotEnoughFiles)
	assert.Equal(t, "Please select at least 2 PDF files to merge.", err.Error())
}

func TestMergeCommandKeepsInputWhenOutputIsInput(t *testing.T) {
	dir := t.TempDir()
	a := pdftest.Write(t, dir, "a.pdf", 2)
	b := pdftest.Write(t, dir, "b.pdf", 1)

	_, err := run(t, "merge", "-o", a, a, b)
	require.ErrorIs(t, err, pdf.ErrOutputIsInput)
	assert.Contains(t, err.Error(), "is one of the files being merged")

	count, err := pdf.PageCount(a)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSplitCommandRange(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.Write(t, dir, "report.pdf", 6)

	stdout, err := run(t, "split", "--pages", "2-4,6", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully extracted 4 pages.")

	count, err := pdf.PageCount(filepath.Join(dir, "report_split.pdf"))
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestSplitCommandInvalidRange(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.Write(t, dir, "report.pdf", 3)

	for _, pages := range []string{"", "x-2", "7-9"} {
		_, err := run(t, "split", "--pages", pages, in)
		require.Error(t, err, pages)
		assert.Equal(t, pagerange.InvalidRangeMessage, err.Error())
	}
}

func TestSplitCommandIndividual(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.Write(t, dir, "report.pdf", 3)
	outDir := filepath.Join(dir, "out")

	stdout, err := run(t, "split", "-o", filepath.Join(outDir, "chapter.pdf"), in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully split the file into 3 pages.")

	for n := 1; n <= 3; n++ {
		assert.FileExists(t, filepath.Join(outDir, pdf.IndividualPageName("chapter", n)))
	}
}

func TestSplitCommandRejectsNonPDF(t *testing.T) {
	_, err := run(t, "split", "notes.txt")
	assert.ErrorIs(t, err, pdf.ErrNotPDF)
}

func TestCompressCommand(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.Write(t, dir, "scan.pdf", 2)

	stdout, err := run(t, "compress", "--grayscale", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, pdf.GrayscaleUnsupported)
	assert.Contains(t, stdout, "Compression complete!")
	assert.FileExists(t, filepath.Join(dir, "scan_compressed.pdf"))
}

func TestPagesCommand(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.Write(t, dir, "report.pdf", 7)

	stdout, err := run(t, "pages", in)
	require.NoError(t, err)
	assert.Equal(t, "7", strings.TrimSpace(stdout))
}
