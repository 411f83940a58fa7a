package tester

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/bnfgen/grammar"
	tspec "github.com/nihei9/bnfgen/spec/test"
)

type TestResult struct {
	TestCasePath string
	Error        error
	Sample       string
	Trial        int
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "
		const indent2 = indent1 + indent1

		msgLines := strings.Split(r.Error.Error(), "\n")
		msg := fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
		if r.Trial == 0 {
			return msg
		}
		return fmt.Sprintf("%v\n%vtrial: %v\n%vsample: %q", msg, indent2, r.Trial, indent2, r.Sample)
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *tspec.TestCase
	FilePath string
	Error    error
}

func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*tspec.TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tspec.ParseTestCase(f)
}

type Tester struct {
	Table *grammar.Table
	Cases []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Table, c))
	}
	return rs
}

// runTest derives samples one after another from a single seeded source, so a failing
// trial is reproducible from the seed of the test case.
func runTest(tab *grammar.Table, c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	tc := c.TestCase
	src := rand.NewSource(tc.Seed)
	for i := 1; i <= tc.Trials; i++ {
		s, err := tab.Generate(tc.Start, grammar.Source(src))
		if err != nil {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        err,
				Trial:        i,
			}
		}
		ok, err := tc.Pattern.MatchString(s)
		if err != nil {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("cannot match the pattern: %w", err),
				Sample:       s,
				Trial:        i,
			}
		}
		if !ok {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("output mismatch: %v", tc.Pattern),
				Sample:       s,
				Trial:        i,
			}
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}
