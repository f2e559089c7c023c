package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/document"
	"github.com/jmylchreest/themectl/internal/theme"
)

var statusOpts struct {
	quiet bool // Print the bare preference only
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored preference",
	Long:  `Show the stored theme preference for the origin and when it last changed.`,
	Args:  cobra.NoArgs,
	RunE:  statusRun,
}

var (
	lightBadge = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#F2F2F2")).
			Padding(0, 1)
	darkBadge = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#F2F2F2")).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Faint(true)
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, statusCmd} {
		cmd.Flags().BoolVarP(&statusOpts.quiet, "quiet", "q", false,
			"Print the bare preference only")
	}
	rootCmd.AddCommand(statusCmd)
}

func statusRun(cmd *cobra.Command, args []string) error {
	m := theme.NewManager(prefStore, document.NewDetached().Root())
	p, err := m.Stored()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statusOpts.quiet {
		fmt.Fprintln(out, p)
		return nil
	}

	fmt.Fprintf(out, "Theme: %s\n", badge(p))
	fmt.Fprintf(out, "  Origin: %s\n", prefStore.Origin())

	updated, err := prefStore.UpdatedAt()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Last change: %s\n", dimStyle.Render(formatUpdated(updated)))
	return nil
}

func badge(p theme.Preference) string {
	if p == theme.Dark {
		return darkBadge.Render(p.String())
	}
	return lightBadge.Render(p.String())
}

// formatUpdated formats the last write time as a human-readable relative time.
func formatUpdated(t time.Time) string {
	if t.IsZero() {
		return "never (default)"
	}
	return humanize.Time(t)
}
