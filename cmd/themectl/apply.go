package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/theme"
)

var applyOpts struct {
	output string
}

var applyCmd = &cobra.Command{
	Use:   "apply PAGE",
	Short: "Apply the stored preference to an HTML page",
	Long: `Load an HTML page, store the default preference if none exists, and
set the data-theme attribute of the page's root element to the stored
preference once the page is ready.

The page is rewritten in place unless --output is given.

Examples:
  themectl apply index.html
  themectl --origin https://flow.example.com apply index.html -o out.html`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyOpts.output, "output", "o", "",
		"Write the page here instead of in place")
}

func runApply(cmd *cobra.Command, args []string) error {
	page := args[0]

	doc, _, err := openPage(prefStore, page)
	if err != nil {
		return err
	}

	if err := writePage(doc, outputPath(page, applyOpts.output)); err != nil {
		return err
	}

	applied, _ := doc.Root().Attribute(theme.Attribute)
	fmt.Fprintln(cmd.OutOrStdout(), applied)
	return nil
}
