package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pdftoolbox/pagerange"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// SplitMode selects how a document is split
type SplitMode string

const (
	// SplitIndividual writes every page to its own file
	SplitIndividual SplitMode = "individual"

	// SplitRange writes the pages of a range expression to one file
	SplitRange SplitMode = "range"
)

// ParseSplitMode maps user input to a SplitMode
func ParseSplitMode(mode string) (SplitMode, error) {
	switch SplitMode(mode) {
	case SplitIndividual, SplitRange:
		return SplitMode(mode), nil
	case "":
		return SplitIndividual, nil
	}
	return "", fmt.Errorf("unknown split mode %q", mode)
}

// SplitResult describes the files written by a split
type SplitResult struct {
	Outputs []string `json:"outputs"`
	Pages   int      `json:"pages"`
}

// SplitIndividualPages writes each page of inFile to outDir as
// <baseName>_page_<n>.pdf.
func SplitIndividualPages(inFile, outDir, baseName string) (SplitResult, error) {
	totalPages, err := PageCount(inFile)
	if err != nil {
		return SplitResult{}, err
	}

	if err := os.MkdirAll(outDir, OutputFilePermissions); err != nil {
		return SplitResult{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	conf := newConfiguration()
	result := SplitResult{Outputs: make([]string, 0, totalPages)}
	for n := 1; n <= totalPages; n++ {
		outFile := filepath.Join(outDir, IndividualPageName(baseName, n))
		if err := api.CollectFile(inFile, outFile, []string{strconv.Itoa(n)}, conf); err != nil {
			return result, fmt.Errorf("failed to extract page %d: %w", n, err)
		}
		result.Outputs = append(result.Outputs, outFile)
		result.Pages++
	}

	return result, nil
}

// SplitPageRange writes the pages selected by expression to outFile in
// ascending order. Range errors from the pagerange package are returned
// unchanged so callers can match them.
func SplitPageRange(inFile, outFile, expression string) (SplitResult, error) {
	totalPages, err := PageCount(inFile)
	if err != nil {
		return SplitResult{}, err
	}

	indices, err := pagerange.Parse(expression, totalPages)
	if err != nil {
		return SplitResult{}, err
	}

	if err := api.CollectFile(inFile, outFile, pagerange.PageNumbers(indices), newConfiguration()); err != nil {
		return SplitResult{}, fmt.Errorf("failed to extract pages: %w", err)
	}

	return SplitResult{Outputs: []string{outFile}, Pages: len(indices)}, nil
}
