package pdf

import "errors"

const (
	// MinMergeFiles is the minimum number of documents a merge accepts
	MinMergeFiles = 2

	// DefaultMergeName is the suggested file name for merged output
	DefaultMergeName = "merged.pdf"

	// SplitSuffix is appended to the input base name for range splits
	SplitSuffix = "_split"

	// CompressSuffix is appended to the input base name for compressed output
	CompressSuffix = "_compressed"

	// PDFExtension is the extension accepted for input documents
	PDFExtension = ".pdf"

	// OutputFilePermissions for directories created to hold split pages
	OutputFilePermissions = 0755
)

var (
	// ErrNotEnoughFiles is returned when a merge gets fewer than MinMergeFiles documents.
	ErrNotEnoughFiles = errors.New("at least two PDF files are required to merge")

	// ErrOutputIsInput is returned when a merge would overwrite one of its inputs.
	ErrOutputIsInput = errors.New("output file is one of the input files")

	// ErrNotPDF is returned when an input does not carry the %PDF header.
	ErrNotPDF = errors.New("invalid PDF file: header does not match")
)
