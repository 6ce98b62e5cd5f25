// Package rules provides batch parsing over a line sequence, with the
// tolerant-read / strict-grammar failure policy described in doc.go.
package rules

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Bags parses a whole rule set from a sequence of lines.
//
// Each sequence item pairs a line with the error of reading it. Items whose
// error is non-nil are skipped silently and the batch continues; a line that
// reads fine but fails Parse aborts the whole batch, wrapping the parse
// error with the item's 1-based position in the sequence (skipped items
// count toward the position). On success the Bags appear in input order.
//
// Error conditions: ErrRuleSyntax and ErrBadCount, propagated from Parse.
//
// Complexity: O(total input length) time, O(#rules) memory.
func Bags(lines iter.Seq2[string, error]) ([]Bag, error) {
	var (
		bags []Bag
		pos  int
	)
	for line, err := range lines {
		pos++
		// 1. An unreadable line is a gap in the source, not a rule violation.
		if err != nil {
			continue
		}
		// 2. A readable line must parse, or the whole rule set is suspect.
		bag, perr := Parse(line)
		if perr != nil {
			return nil, fmt.Errorf("rules: line %d: %w", pos, perr)
		}
		bags = append(bags, bag)
	}

	return bags, nil
}

// ScanLines adapts r into the line sequence Bags consumes, yielding each
// line without its terminator. If the underlying read fails, the sequence
// ends with a single ("", err) item carrying the scanner's error.
func ScanLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}
