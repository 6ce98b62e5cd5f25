package capacity_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/haversack/capacity"
	"github.com/katalvlaran/haversack/containment"
	"github.com/katalvlaran/haversack/rules"
)

// ExampleRequiredBags computes how many bags a single shiny gold bag must
// hold. Each level doubles:
//
//	shiny gold ──2──▶ dark red ──2──▶ dark orange ──2──▶ dark yellow
//
// giving 2 + 4 + 8 = 14 bags in total.
func ExampleRequiredBags() {
	const ruleText = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain no other bags.`

	bags, err := rules.Bags(rules.ScanLines(strings.NewReader(ruleText)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n, err := capacity.RequiredBags(containment.NewContains(bags), "shiny gold")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)

	// Output:
	// 14
}

// ExampleRequiredBags_cycle shows the failure mode on rules that route a
// bag back into itself.
func ExampleRequiredBags_cycle() {
	g := containment.NewContains([]rules.Bag{
		{Color: "glossy black", Contents: []rules.Content{{Count: 1, Color: "matte white"}}},
		{Color: "matte white", Contents: []rules.Content{{Count: 1, Color: "glossy black"}}},
	})

	_, err := capacity.RequiredBags(g, "glossy black")
	fmt.Println(errors.Is(err, capacity.ErrCycleDetected))
	fmt.Println(err)

	// Output:
	// true
	// capacity: containment cycle detected: "glossy black"
}
