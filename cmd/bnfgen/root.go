package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bnfgen",
	Short: "Generate random text from BNF production rules",
	Long: `bnfgen reads production rules such as <list>::="x"<list>|E and provides the following features:
- Generates random strings derived from a start symbol.
- Prints the parsed rules and checks them for undefined, unreachable, or non-terminating rules.
- Tests that generated strings match expected patterns.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
