package test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// TestCase describes the text a rule table is expected to generate. Every one of Trials
// samples derived from Start must match Pattern in full.
type TestCase struct {
	Description string
	Start       string
	Trials      int
	Seed        int64
	Pattern     *regexp2.Regexp
}

// ParseTestCase reads a test case consisting of three parts separated by --- lines: a
// description, directives, and a pattern.
//
//	Lists of x
//	---
//	start list
//	trials 100
//	---
//	x( x)*
func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(parts))
	}

	c := &TestCase{
		Description: string(parts[0].buf),
		Trials:      1,
	}

	err = parseDirectives(c, parts[1].buf, parts[0].lineCount+2)
	if err != nil {
		return nil, err
	}

	src := strings.TrimSpace(string(parts[2].buf))
	if src == "" {
		return nil, fmt.Errorf("a test case needs a pattern")
	}
	c.Pattern, err = regexp2.Compile(`^(?:`+src+`)$`, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	return c, nil
}

func parseDirectives(c *TestCase, src []byte, lineOffset int) error {
	hasStart := false
	s := bufio.NewScanner(bytes.NewReader(src))
	row := lineOffset - 1
	for s.Scan() {
		row++
		line := strings.TrimSuffix(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, param, _ := strings.Cut(line, " ")
		switch name {
		case "start":
			c.Start = param
			hasStart = true
		case "trials":
			n, err := strconv.Atoi(strings.TrimSpace(param))
			if err != nil || n < 1 {
				return fmt.Errorf("%v: trials must be a positive integer: %v", row, param)
			}
			c.Trials = n
		case "seed":
			n, err := strconv.ParseInt(strings.TrimSpace(param), 10, 64)
			if err != nil {
				return fmt.Errorf("%v: seed must be an integer: %v", row, param)
			}
			c.Seed = n
		default:
			return fmt.Errorf("%v: unknown directive: %v", row, name)
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !hasStart {
		return fmt.Errorf("a test case needs a start directive")
	}
	return nil
}

type testCasePart struct {
	buf       []byte
	lineCount int
}

func splitIntoParts(r io.Reader) ([]*testCasePart, error) {
	var bufs []*testCasePart
	s := bufio.NewScanner(r)
	for {
		buf, lineCount, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, &testCasePart{
			buf:       buf,
			lineCount: lineCount,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}

var reDelim = regexp2.MustCompile(`^\s*---+\s*$`, regexp2.RE2)

func isDelim(line []byte) bool {
	ok, err := reDelim.MatchString(string(line))
	return err == nil && ok
}

func readPart(s *bufio.Scanner) ([]byte, int, error) {
	if !s.Scan() {
		return nil, 0, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if isDelim(line) {
		// Return an empty slice because (*bytes.Buffer).Bytes() returns nil if we have never written data.
		return []byte{}, 0, nil
	}
	_, err := buf.Write(line)
	if err != nil {
		return nil, 0, err
	}
	lineCount := 1
	for s.Scan() {
		line := s.Bytes()
		if isDelim(line) {
			return buf.Bytes(), lineCount, nil
		}
		_, err := buf.Write([]byte("\n"))
		if err != nil {
			return nil, 0, err
		}
		_, err = buf.Write(line)
		if err != nil {
			return nil, 0, err
		}
		lineCount++
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), lineCount, nil
}
