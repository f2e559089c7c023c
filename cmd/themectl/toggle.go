package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleOpts struct {
	output string
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [PAGE]",
	Short: "Flip the preference between light and dark",
	Long: `Flip the theme preference and persist it.

With a PAGE, the page is loaded and the stored preference applied first,
then the preference shown on the page is flipped and the page rewritten
(in place unless --output is given). Without a PAGE the stored preference
is flipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().StringVarP(&toggleOpts.output, "output", "o", "",
		"Write the page here instead of in place")
}

func runToggle(cmd *cobra.Command, args []string) error {
	var page string
	if len(args) == 1 {
		page = args[0]
	}

	doc, m, err := openPage(prefStore, page)
	if err != nil {
		return err
	}

	next, err := m.Toggle()
	if err != nil {
		return err
	}

	if page != "" {
		if err := writePage(doc, outputPath(page, toggleOpts.output)); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}
