// Package haversack parses textual luggage rules ("which bags contain
// which, and how many") and answers the two classic questions over the
// derived containment relation.
//
// 🚀 What is haversack?
//
//	A small, synchronous library that takes rule lines like
//
//		light red bags contain 1 bright white bag, 2 muted yellow bags.
//		faded blue bags contain no other bags.
//
//	and turns them into query-ready graphs:
//		• Parsing: one Bag per line, tokenized with plain string scanning
//		• Graphs: the reverse relation (who contains me) and the forward
//		  relation (what I contain, with multiplicities)
//		• Queries: ancestor closure (how many colors can eventually hold
//		  a target) and weighted descent (how many bags one target must
//		  transitively hold)
//
// ✨ Why choose haversack?
//
//   - One-way data flow – text → rules → graphs → answers, nothing mutates
//     upstream state
//   - Loud failures – sentinel errors with the offending line, position, or
//     color wrapped in; no partial results
//   - Termination guarantees – closure and descent both survive cyclic
//     input, the latter by failing fast instead of recursing forever
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	rules/       — rule grammar, Parse, batch Bags over a line sequence
//	containment/ — ContainedBy and Contains graphs + builders
//	closure/     — PotentialContainers (ancestor closure)
//	capacity/    — RequiredBags (weighted descent)
//
// Quick ASCII example:
//
//	light red ──▶ bright white ──▶ shiny gold ──▶ dark olive
//
//	four rules chained by containment; the closure of "shiny gold" is
//	{bright white, light red}, and its required count follows the arrows
//	the other way.
//
//	go get github.com/katalvlaran/haversack
package haversack
