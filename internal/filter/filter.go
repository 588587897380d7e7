// Package filter narrows the element registry before views are built. A
// Chain runs named checks over each element; an element is kept only when
// every check accepts it, and the first rejecting check is recorded.
package filter

import "github.com/papapumpkin/spectra/internal/periodic"

// Check is a single named element predicate.
type Check struct {
	Name string
	Fn   func(periodic.Element) bool
}

// Chain runs checks in order, stopping at the first rejection per element.
// A nil or empty chain keeps everything.
type Chain struct {
	Checks []Check
}

// Rejection records which check dropped an element.
type Rejection struct {
	Symbol string
	Check  string
}

// Result is the outcome of running a chain over a list of elements.
type Result struct {
	Kept    []periodic.Element
	Dropped []Rejection
}

// Passed reports whether nothing was dropped.
func (r *Result) Passed() bool { return len(r.Dropped) == 0 }

// FirstRejection returns the first dropped element, or nil if all passed.
func (r *Result) FirstRejection() *Rejection {
	if len(r.Dropped) == 0 {
		return nil
	}
	return &r.Dropped[0]
}

// Run applies the chain to elements, preserving input order in Kept.
func (c *Chain) Run(elements []periodic.Element) *Result {
	result := &Result{Kept: make([]periodic.Element, 0, len(elements))}
	for _, el := range elements {
		if name, ok := c.accept(el); !ok {
			result.Dropped = append(result.Dropped, Rejection{Symbol: el.Symbol, Check: name})
			continue
		}
		result.Kept = append(result.Kept, el)
	}
	return result
}

// Keep is Run returning only the kept elements.
func (c *Chain) Keep(elements []periodic.Element) []periodic.Element {
	return c.Run(elements).Kept
}

// Add appends a check and returns the chain for chaining calls.
func (c *Chain) Add(check Check) *Chain {
	c.Checks = append(c.Checks, check)
	return c
}

func (c *Chain) accept(el periodic.Element) (string, bool) {
	if c == nil {
		return "", true
	}
	for _, check := range c.Checks {
		if check.Fn != nil && !check.Fn(el) {
			return check.Name, false
		}
	}
	return "", true
}

// ForCenturies returns a chain holding a century check, or an empty chain
// when no centuries are selected.
func ForCenturies(centuries []Century) *Chain {
	chain := &Chain{}
	if check, ok := ByCenturies(centuries...); ok {
		chain.Add(check)
	}
	return chain
}
