package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/git-l10n/po-stats/cmd"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			if resp.Cmd.SilenceErrors {
				fmt.Fprintf(errOut, "ERROR: %s\n\n", resp.Err)
			}
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else if resp.Cmd.SilenceErrors {
			fmt.Fprintln(errOut, "")
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			subCmdPath := strings.TrimPrefix(resp.Cmd.CommandPath(), cmd.Program+" ")
			if subCmdPath == "" {
				subCmdPath = resp.Cmd.Name()
			}
			fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", cmd.Program, subCmdPath)
		}
		os.Exit(-1)
	}
}
