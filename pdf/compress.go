package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// GrayscaleUnsupported is reported when a grayscale conversion is requested
const GrayscaleUnsupported = "Grayscale conversion is not yet implemented. This feature requires a more advanced PDF library."

// CompressOptions tunes CompressPDF
type CompressOptions struct {
	Grayscale bool
}

// CompressResult describes the size change of a compression
type CompressResult struct {
	OriginalSize   int64   `json:"original_size"`
	CompressedSize int64   `json:"compressed_size"`
	Reduction      float64 `json:"reduction"`
	Notice         string  `json:"notice,omitempty"`
}

// Reduced reports whether the output is smaller than the input
func (r CompressResult) Reduced() bool {
	return r.Reduction > 0
}

// CompressPDF optimizes inFile and writes the result to outFile
func CompressPDF(inFile, outFile string, opts CompressOptions) (CompressResult, error) {
	originalInfo, err := os.Stat(inFile)
	if err != nil {
		return CompressResult{}, fmt.Errorf("failed to stat input: %w", err)
	}

	if err := api.OptimizeFile(inFile, outFile, newConfiguration()); err != nil {
		return CompressResult{}, fmt.Errorf("pdfcpu optimize failed: %w", err)
	}

	compressedInfo, err := os.Stat(outFile)
	if err != nil {
		return CompressResult{}, fmt.Errorf("failed to stat output: %w", err)
	}

	result := CompressResult{
		OriginalSize:   originalInfo.Size(),
		CompressedSize: compressedInfo.Size(),
		Reduction:      reduction(originalInfo.Size(), compressedInfo.Size()),
	}
	if opts.Grayscale {
		result.Notice = GrayscaleUnsupported
	}

	return result, nil
}

// reduction is the percentage by which newSize is smaller than originalSize
func reduction(originalSize, newSize int64) float64 {
	if originalSize <= 0 {
		return 0
	}
	return 100 - float64(newSize)/float64(originalSize)*100
}
