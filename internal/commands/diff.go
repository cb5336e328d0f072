package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hay-kot/popwire/pkg/popup"
)

// diffLine is one line of a line-oriented diff. Op is '+', '-' or ' '.
type diffLine struct {
	Op   byte
	Text string
}

// recordLines renders a record as indented JSON, the form diffs compare.
func recordLines(rec popup.Record) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(data) + "\n", nil
}

// diffRecords returns a line diff of a and b's JSON forms.
func diffRecords(a, b popup.Record) ([]diffLine, error) {
	left, err := recordLines(a)
	if err != nil {
		return nil, err
	}
	right, err := recordLines(b)
	if err != nil {
		return nil, err
	}
	return diffText(left, right), nil
}

// diffText diffs two texts line by line.
func diffText(a, b string) []diffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []diffLine
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		default:
			op = ' '
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, diffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

// changed reports whether any line differs.
func changed(lines []diffLine) bool {
	for _, l := range lines {
		if l.Op != ' ' {
			return true
		}
	}
	return false
}
