package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating its config directory in the user's home.
	api.DisableConfigDir()
}

// newConfiguration returns the pdfcpu configuration shared by all operations
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in a PDF file
func PageCount(inFile string) (int, error) {
	count, err := api.PageCountFile(inFile)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return count, nil
}

// IsPDFPath reports whether path has a .pdf extension, ignoring case
func IsPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), PDFExtension)
}

// FilterPDFPaths keeps the PDF paths from a selection, dropping duplicates
// and preserving the order in which they were first seen.
func FilterPDFPaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var filtered []string
	for _, path := range paths {
		if !IsPDFPath(path) || seen[path] {
			continue
		}
		seen[path] = true
		filtered = append(filtered, path)
	}
	return filtered
}

// BaseName returns the file name of path without directory or extension
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// SplitOutputName suggests the output path for a range split of inFile
func SplitOutputName(inFile string) string {
	return filepath.Join(filepath.Dir(inFile), BaseName(inFile)+SplitSuffix+PDFExtension)
}

// CompressOutputName suggests the output path for compressing inFile
func CompressOutputName(inFile string) string {
	return filepath.Join(filepath.Dir(inFile), BaseName(inFile)+CompressSuffix+PDFExtension)
}

// IndividualPageName is the file name of page n (1-based) in an individual split
func IndividualPageName(baseName string, n int) string {
	return fmt.Sprintf("%s_page_%d%s", baseName, n, PDFExtension)
}
