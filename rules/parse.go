// Package rules implements the rule grammar with a plain string tokenizer:
// fixed delimiters, a manual digit scan, and no pattern-matching machinery.
//
// Parse handles one line; Bags (see bags.go) drives it over a line sequence.
package rules

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ruleSeparator splits a rule line into subject color and contents clause.
	ruleSeparator = " bags contain "
	// contentSeparator splits the contents clause into individual content clauses.
	contentSeparator = ","
	// bagSuffix terminates a content clause's color; an optional plural "s"
	// and an optional ruleTerminator may follow.
	bagSuffix = " bag"
	// ruleTerminator is the optional trailing period of a clause.
	ruleTerminator = "."
)

// Parse parses one rule line into a Bag.
//
// The line must match "<color> bags contain <contents>", where <color> is one
// or more words separated by single spaces and <contents> is non-empty. The
// color is captured greedily: the subject/contents split happens at the last
// occurrence of " bags contain ". Comma-separated content clauses of the
// shape "<count> <color> bag(s)" are collected in order; clauses of any other
// shape (such as "no other bags") are dropped, which is how terminal rules
// yield an empty Bag.Contents.
//
// Error conditions:
//   - ErrRuleSyntax : no subject/contents split, ill-formed subject color,
//     or empty contents clause.
//   - ErrBadCount   : a content clause's count does not fit a uint64.
//
// Complexity: O(len(line)) time, O(#contents) memory.
func Parse(line string) (Bag, error) {
	// 1. Split subject color from the contents clause at the last
	//    ruleSeparator occurrence (greedy color capture).
	cut := strings.LastIndex(line, ruleSeparator)
	if cut < 0 {
		return Bag{}, fmt.Errorf("%w: %q", ErrRuleSyntax, line)
	}
	color, contents := line[:cut], line[cut+len(ruleSeparator):]

	// 2. Validate the subject color shape.
	if !wellFormedColor(color) {
		return Bag{}, fmt.Errorf("%w: bad color in %q", ErrRuleSyntax, line)
	}

	// 3. The contents clause must be present even when it declares nothing.
	if contents == "" {
		return Bag{}, fmt.Errorf("%w: empty contents in %q", ErrRuleSyntax, line)
	}

	// 4. Tokenize each clause independently; non-content clauses are dropped.
	bag := Bag{Color: color}
	for _, clause := range strings.Split(contents, contentSeparator) {
		content, ok, err := parseContent(clause)
		if err != nil {
			return Bag{}, err
		}
		if ok {
			bag.Contents = append(bag.Contents, content)
		}
	}

	return bag, nil
}

// parseContent matches one comma-separated piece against the content-clause
// shape "<count> <color> bag(s)" with an optional leading space and an
// optional trailing period. It reports ok=false for pieces of any other
// shape; only a structurally complete clause may fail, and only on a count
// too large for a uint64 (ErrBadCount).
func parseContent(clause string) (Content, bool, error) {
	// 1. Drop the single leading space left by the comma split.
	s := strings.TrimPrefix(clause, " ")

	// 2. The clause must open with a digit run (the count).
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return Content{}, false, nil
	}

	// 3. A single space must separate the count from the color.
	rest := s[digits:]
	if !strings.HasPrefix(rest, " ") {
		return Content{}, false, nil
	}

	// 4. The color runs greedily up to the last " bag" suffix.
	color, ok := cutBagSuffix(rest[1:])
	if !ok || !wellFormedColor(color) {
		return Content{}, false, nil
	}

	// 5. Only now may the count reject the clause: the digit run either
	//    fits a uint64 or the whole batch aborts.
	count, err := strconv.ParseUint(s[:digits], 10, 64)
	if err != nil {
		return Content{}, false, fmt.Errorf("%w: %q", ErrBadCount, strings.TrimSpace(clause))
	}

	return Content{Count: count, Color: color}, true, nil
}

// cutBagSuffix splits "<color> bag(s)[.]" around its last " bag" occurrence.
// Splitting on the last occurrence keeps the color capture greedy, so colors
// whose final word is itself "bag" survive intact.
func cutBagSuffix(s string) (string, bool) {
	i := strings.LastIndex(s, bagSuffix)
	if i < 0 {
		return "", false
	}
	switch s[i+len(bagSuffix):] {
	case "", "s", ruleTerminator, "s" + ruleTerminator:
		return s[:i], true
	}

	return "", false
}

// wellFormedColor reports whether s is one or more words separated by single
// spaces, with no leading or trailing space.
func wellFormedColor(s string) bool {
	if s == "" {
		return false
	}
	for _, word := range strings.Split(s, " ") {
		if word == "" {
			return false
		}
		for _, r := range word {
			if !wordChar(r) {
				return false
			}
		}
	}

	return true
}

// wordChar reports whether r may appear inside a color word: ASCII letters,
// digits, and underscore.
func wordChar(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z':
		return true
	case 'A' <= r && r <= 'Z':
		return true
	case '0' <= r && r <= '9':
		return true
	case r == '_':
		return true
	}

	return false
}
