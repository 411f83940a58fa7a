package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkFlags = struct {
	start  *string
	strict *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check [<rule file path>]",
		Short:   "Check rules for undefined, unreachable, and non-terminating non-terminals",
		Example: `  bnfgen check rules.bnf -s output`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCheck,
	}
	checkFlags.start = cmd.Flags().StringP("start", "s", "output", "start symbol")
	checkFlags.strict = cmd.Flags().Bool("strict", false, "fail when any rule cannot be loaded instead of skipping it")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	tab, err := readTable(pathArg(args), *checkFlags.strict)
	if err != nil {
		return err
	}

	err = tab.Check(*checkFlags.start)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%v rules OK\n", tab.Len())
	return nil
}
