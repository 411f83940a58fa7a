package spec

import (
	"bufio"
	"io"
	"strings"
)

// RuleSource is the text of one rule and the row it begins at.
type RuleSource struct {
	Text string
	Row  int
}

// ReadRules splits src into rule texts. Rules are separated by one or more blank lines.
// The lines of a single paragraph are kept joined by a newline, which Parse rejects, so a
// missing separator surfaces as a syntax error of that rule.
func ReadRules(src io.Reader) ([]*RuleSource, error) {
	var srcs []*RuleSource
	var lines []string
	row := 0
	startRow := 0
	flush := func() {
		if len(lines) == 0 {
			return
		}
		srcs = append(srcs, &RuleSource{
			Text: strings.Join(lines, "\n"),
			Row:  startRow,
		})
		lines = nil
	}

	s := bufio.NewScanner(src)
	for s.Scan() {
		row++
		line := strings.TrimSuffix(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(lines) == 0 {
			startRow = row
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	flush()

	return srcs, nil
}
