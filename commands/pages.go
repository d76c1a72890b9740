package commands

import (
	"fmt"

	"pdftoolbox/pdf"

	"github.com/spf13/cobra"
)

func newPagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pages FILE",
		Short: "Print the number of pages in a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := pdf.PageCount(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, count)
			return nil
		},
	}
}
