package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"greenbench/internal/config"
)

var (
	suiteStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	workloadStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

func newListCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suites and their workloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.FromViper(v)
			if err := settings.Validate(); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}

			out := cmd.OutOrStdout()
			for _, s := range catalogFunc(settings.Scale) {
				fmt.Fprintf(out, "%s %s\n", suiteStyle.Render(s.Name), descriptionStyle.Render(s.Description))
				for _, w := range s.Workloads {
					fmt.Fprintln(out, workloadStyle.Render(s.Name+"/"+w.Name))
				}
			}
			return nil
		},
	}
}
