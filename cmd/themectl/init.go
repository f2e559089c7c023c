package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Store the default preference if none exists",
	Long: `Store the default "light" preference for the origin unless one is
already stored. Running init again leaves an existing preference untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	_, m, err := openPage(prefStore, "")
	if err != nil {
		return err
	}

	p, err := m.Stored()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}
