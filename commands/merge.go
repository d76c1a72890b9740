package commands

import (
	"errors"
	"fmt"

	"pdftoolbox/pdf"

	"github.com/spf13/cobra"
)

func newMergeCmd(a *app) *cobra.Command {
	var (
		output string
		open   bool
	)

	cmd := &cobra.Command{
		Use:   "merge FILE FILE [FILE...]",
		Short: "Merge PDF files, in the given order, into one document",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := pdf.FilterPDFPaths(args)
			if skipped := len(args) - len(files); skipped > 0 {
				a.info("Ignoring %d duplicate or non-PDF argument(s)", skipped)
			}
			if len(files) < pdf.MinMergeFiles {
				return newUserError(pdf.ErrNotEnoughFiles, "Please select at least %d PDF files to merge.", pdf.MinMergeFiles)
			}

			result, err := pdf.MergePDFs(files, output)
			if errors.Is(err, pdf.ErrOutputIsInput) {
				return newUserError(err, "The output file %s is one of the files being merged. Choose another output name.", output)
			}
			if err != nil {
				a.logger.Error().Err(err).Strs("files", files).Msg("merge failed")
				return fmt.Errorf("an error occurred while merging the PDF files: %w", err)
			}

			a.logger.Debug().Int("files", result.Files).Int("pages", result.Pages).Str("output", output).Msg("merged")
			a.success("Successfully merged %d files (%d pages) into %s", result.Files, result.Pages, output)
			a.openResult(open, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", pdf.DefaultMergeName, "output file")
	cmd.Flags().BoolVar(&open, "open", false, "open the merged file when done")
	return cmd
}
