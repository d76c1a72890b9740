package commands

import (
	"fmt"

	"pdftoolbox/pdf"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCompressCmd(a *app) *cobra.Command {
	var (
		output    string
		grayscale bool
		open      bool
	)

	cmd := &cobra.Command{
		Use:   "compress FILE",
		Short: "Optimize a PDF to reduce its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inFile := args[0]
			if !pdf.IsPDFPath(inFile) {
				return newUserError(pdf.ErrNotPDF, "Please select a PDF file to compress.")
			}
			if output == "" {
				output = pdf.CompressOutputName(inFile)
			}

			result, err := pdf.CompressPDF(inFile, output, pdf.CompressOptions{Grayscale: grayscale})
			if err != nil {
				a.logger.Error().Err(err).Str("file", inFile).Msg("compress failed")
				return fmt.Errorf("an error occurred during compression: %w", err)
			}

			if result.Notice != "" {
				a.warning("%s", result.Notice)
			}
			if result.Reduced() {
				a.success("Compression complete! File size reduced by %.2f%%.", result.Reduction)
			} else {
				a.success("Compression complete! Note: This PDF may already be optimized, so size reduction is minimal.")
			}
			a.info("%s -> %s", humanize.Bytes(uint64(result.OriginalSize)), humanize.Bytes(uint64(result.CompressedSize)))

			a.openResult(open, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>_compressed.pdf)")
	cmd.Flags().BoolVar(&grayscale, "grayscale", false, "convert to grayscale (not available yet)")
	cmd.Flags().BoolVar(&open, "open", false, "open the compressed file when done")
	return cmd
}
