package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MergeResult describes a completed merge
type MergeResult struct {
	Files int `json:"files"`
	Pages int `json:"pages"`
}

// MergePDFs concatenates the pages of inFiles, in order, into outFile
func MergePDFs(inFiles []string, outFile string) (MergeResult, error) {
	if len(inFiles) < MinMergeFiles {
		return MergeResult{}, ErrNotEnoughFiles
	}

	// pdfcpu truncates outFile before reading the inputs and removes it on failure.
	for _, inFile := range inFiles {
		if sameFile(inFile, outFile) {
			return MergeResult{}, fmt.Errorf("%w: %s", ErrOutputIsInput, outFile)
		}
	}

	if err := api.MergeCreateFile(inFiles, outFile, false, newConfiguration()); err != nil {
		return MergeResult{}, fmt.Errorf("failed to merge PDFs: %w", err)
	}

	pages, err := PageCount(outFile)
	if err != nil {
		return MergeResult{}, err
	}

	return MergeResult{Files: len(inFiles), Pages: pages}, nil
}

// sameFile reports whether a and b name the same file, either by path or,
// when both exist, by identity (hard links, symlinks).
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
