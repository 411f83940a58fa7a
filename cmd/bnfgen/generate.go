package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"

	"github.com/dlclark/regexp2"
	"github.com/nihei9/bnfgen/grammar"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	start     *string
	count     *int
	seed      *int64
	divisor   *float64
	offset    *float64
	maxLength *int
	uniform   *bool
	match     *string
	attempts  *int
	strict    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate [<rule file path>]",
		Short:   "Generate random strings from rules",
		Example: `  bnfgen generate rules.bnf -s output -n 10`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.start = cmd.Flags().StringP("start", "s", "output", "start symbol")
	generateFlags.count = cmd.Flags().IntP("count", "n", 1, "number of strings to generate")
	generateFlags.seed = cmd.Flags().Int64("seed", 0, "seed of the random source (default random)")
	generateFlags.divisor = cmd.Flags().Float64("divisor", grammar.DefaultDecayDivisor, "output length at which choosing a further alternative becomes half as likely")
	generateFlags.offset = cmd.Flags().Float64("offset", grammar.DefaultDecayOffset, "value added to the output length before it is divided")
	generateFlags.maxLength = cmd.Flags().Int("max-length", 0, "once the output reaches this length, always take the current alternative (0 means no limit)")
	generateFlags.uniform = cmd.Flags().Bool("uniform", false, "choose alternatives uniformly regardless of the output length")
	generateFlags.match = cmd.Flags().String("match", "", "keep only strings matching this regular expression")
	generateFlags.attempts = cmd.Flags().Int("attempts", 1000, "maximum number of derivations per string when --match is given")
	generateFlags.strict = cmd.Flags().Bool("strict", false, "fail when any rule cannot be loaded instead of skipping it")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) (retErr error) {
	defer func() {
		v := recover()
		if v != nil {
			retErr = fmt.Errorf("an unexpected error occurred: %v", v)
			fmt.Fprintf(os.Stderr, "%v:\n%v", retErr, string(debug.Stack()))
		}
	}()

	if *generateFlags.count < 0 {
		return fmt.Errorf("--count must not be negative")
	}
	if *generateFlags.divisor <= 0 {
		return fmt.Errorf("--divisor must be positive")
	}

	var policy grammar.Policy
	if *generateFlags.uniform {
		policy = grammar.UniformPolicy{}
	} else {
		policy = &grammar.DecayPolicy{
			Divisor: *generateFlags.divisor,
			Offset:  *generateFlags.offset,
		}
	}
	if *generateFlags.maxLength > 0 {
		policy = &grammar.LengthCapPolicy{
			Policy:    policy,
			MaxLength: *generateFlags.maxLength,
		}
	}

	tab, err := readTable(pathArg(args), *generateFlags.strict, grammar.BranchPolicy(policy))
	if err != nil {
		return err
	}

	var re *regexp2.Regexp
	if *generateFlags.match != "" {
		re, err = regexp2.Compile(*generateFlags.match, regexp2.RE2)
		if err != nil {
			return fmt.Errorf("Invalid --match pattern: %w", err)
		}
	}

	var opts []grammar.GenerateOption
	if cmd.Flags().Changed("seed") {
		opts = append(opts, grammar.Source(rand.NewSource(*generateFlags.seed)))
	}

	for i := 0; i < *generateFlags.count; i++ {
		s, err := generateOne(tab, re, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, s)
	}

	return nil
}

func generateOne(tab *grammar.Table, re *regexp2.Regexp, opts []grammar.GenerateOption) (string, error) {
	attempts := 1
	if re != nil {
		attempts = *generateFlags.attempts
	}
	for i := 0; i < attempts; i++ {
		s, err := tab.Generate(*generateFlags.start, opts...)
		if err != nil {
			return "", err
		}
		if re == nil {
			return s, nil
		}
		ok, err := re.MatchString(s)
		if err != nil {
			return "", err
		}
		if ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("No string matched %v in %v attempts", re, attempts)
}
