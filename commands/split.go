package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"pdftoolbox/pagerange"
	"pdftoolbox/pdf"

	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		pages  string
		output string
		open   bool
	)

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Split a PDF into single pages, or extract a page range",
		Long: `Without --pages every page is written to <name>_page_<n>.pdf next to the
output path. With --pages the selected pages are written to a single file.
Page ranges look like "1-3", "5" or "1,3,5-7".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inFile := args[0]
			if !pdf.IsPDFPath(inFile) {
				return newUserError(pdf.ErrNotPDF, "Please select a PDF file to split.")
			}
			if output == "" {
				output = pdf.SplitOutputName(inFile)
			}

			if cmd.Flags().Changed("pages") {
				return a.splitRange(inFile, output, pages, open)
			}
			return a.splitIndividual(inFile, output, open)
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", `pages to extract, e.g. "1-3,5"`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>_split.pdf)")
	cmd.Flags().BoolVar(&open, "open", false, "open the output folder when done")
	return cmd
}

func (a *app) splitRange(inFile, outFile, expression string, open bool) error {
	result, err := pdf.SplitPageRange(inFile, outFile, expression)
	if err != nil {
		if errors.Is(err, pagerange.ErrEmptyExpression) ||
			errors.Is(err, pagerange.ErrMalformedToken) ||
			errors.Is(err, pagerange.ErrEmptyResult) {
			a.logger.Debug().Err(err).Str("pages", expression).Msg("rejected page range")
			return newUserError(err, "%s", pagerange.InvalidRangeMessage)
		}
		a.logger.Error().Err(err).Str("file", inFile).Msg("split failed")
		return fmt.Errorf("an error occurred during splitting: %w", err)
	}

	a.success("Successfully extracted %d pages.", result.Pages)
	a.openResult(open, filepath.Dir(outFile))
	return nil
}

func (a *app) splitIndividual(inFile, outFile string, open bool) error {
	outDir := filepath.Dir(outFile)
	result, err := pdf.SplitIndividualPages(inFile, outDir, pdf.BaseName(outFile))
	if err != nil {
		a.logger.Error().Err(err).Str("file", inFile).Msg("split failed")
		return fmt.Errorf("an error occurred during splitting: %w", err)
	}

	a.success("Successfully split the file into %d pages.", result.Pages)
	a.openResult(open, outDir)
	return nil
}
