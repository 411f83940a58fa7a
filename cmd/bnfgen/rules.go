package main

import (
	"fmt"
	"io"
	"os"

	verr "github.com/nihei9/bnfgen/error"
	"github.com/nihei9/bnfgen/grammar"
	"github.com/nihei9/bnfgen/spec"
)

// readTable loads rules from path, or from stdin when path is empty. Rules that fail to load
// are reported to stderr and skipped unless strict is set.
func readTable(path string, strict bool, opts ...grammar.TableOption) (*grammar.Table, error) {
	var src io.Reader = os.Stdin
	sourceName := "stdin"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Cannot open the rule file %s: %w", path, err)
		}
		defer f.Close()
		src = f
		sourceName = path
	}

	srcs, err := spec.ReadRules(src)
	if err != nil {
		return nil, fmt.Errorf("Cannot read rules from %s: %w", sourceName, err)
	}

	tab := grammar.NewTable(opts...)
	err = tab.AddAll(srcs)
	if err != nil {
		specErrs, ok := err.(verr.SpecErrors)
		if !ok {
			return nil, err
		}
		for _, e := range specErrs {
			e.FilePath = path
			e.SourceName = sourceName
		}
		if strict {
			return nil, specErrs
		}
		for _, e := range specErrs {
			fmt.Fprintf(os.Stderr, "[skip] %v\n", e)
		}
	}

	return tab, nil
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
