package cmd

import (
	"fmt"

	"github.com/git-l10n/po-stats/version"
	"github.com/spf13/cobra"
)

type versionCommand struct {
	cmd *cobra.Command
}

func (v *versionCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	return v.cmd
}

func (v versionCommand) Execute(args []string) error {
	fmt.Fprintf(v.cmd.OutOrStdout(), "%s version %s\n", Program, version.Version)
	return nil
}

var versionCmd = versionCommand{}

func init() {
	rootCmd.AddCommand(versionCmd.Command())
}
