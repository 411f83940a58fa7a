package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/nihei9/bnfgen/spec"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	repr *bool
	ebnf *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show [<rule file path>]",
		Short:   "Print parsed rules in a readable format",
		Example: `  bnfgen show rules.bnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runShow,
	}
	showFlags.repr = cmd.Flags().Bool("repr", false, "dump the node structure of each rule")
	showFlags.ebnf = cmd.Flags().Bool("ebnf", false, "print the rules in the EBNF notation of golang.org/x/exp/ebnf")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	tab, err := readTable(pathArg(args), false)
	if err != nil {
		return err
	}

	if *showFlags.ebnf {
		fmt.Fprint(os.Stdout, tab.EBNF())
		return nil
	}

	for i, name := range tab.Names() {
		r, _ := tab.Lookup(name)
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, r)
		if *showFlags.repr {
			repr.Println(r, repr.Indent("  "))
			continue
		}
		spec.PrintTree(os.Stdout, r)
	}

	return nil
}
