// Package rules parses textual luggage rules of the form
//
//	<color> bags contain <contents>.
//
// into structured Bag values, one per line, ready for graph building.
//
// What
//
//   - Parse turns one rule line into a Bag: the subject color plus its
//     direct Content requirements, in declaration order.
//   - Bags consumes a whole line sequence (iter.Seq2[string, error]) and
//     returns the parsed rule set.
//   - ScanLines adapts any io.Reader into that line sequence.
//
// Grammar
//
//	<color>    := one or more words (letters, digits, underscore)
//	              separated by single spaces, captured greedily up to
//	              the literal " bags contain ".
//	<contents> := the literal "no other bags", or a comma-separated list
//	              of clauses "<count> <color> bag(s)", with an optional
//	              trailing period.
//
// Clauses that do not match the content shape (notably "no other bags")
// are dropped rather than rejected: the filtering is the mechanism that
// yields an empty Contents for terminal bags, not a special branch.
//
// Failure policy
//
//	Bags is tolerant of the line source and strict about the grammar:
//	items whose read failed are skipped silently and the batch continues,
//	while a line that reads fine but violates the grammar aborts the whole
//	batch with the offending position wrapped in.
//
// Errors
//
//   - ErrRuleSyntax  if a line has no subject/contents split, an
//     ill-formed subject color, or an empty contents clause.
//   - ErrBadCount    if a structurally valid content clause carries a
//     count too large for a uint64.
//
// Complexity
//
//   - Parse: O(len(line)) time, O(#contents) memory.
//   - Bags:  O(total input length) time, O(#rules) memory.
//
// Usage
//
//	bags, err := rules.Bags(rules.ScanLines(f))
//	if err != nil {
//	    // handle ErrRuleSyntax / ErrBadCount via errors.Is
//	}
package rules
