package parser

import (
	"strings"

	"bennypowers.dev/tss/internal/collections"
	"bennypowers.dev/tss/internal/span"
	"bennypowers.dev/tss/style"
)

// Selector tests whether a rule applies to an (element, class-set) query.
// Element is nil for selectors with no leading element literal, which match
// any element. Classes keeps source order for diagnostics; matching ignores
// order.
type Selector struct {
	Element *span.Spanned[string]
	Classes []span.Spanned[string]
}

// Matches reports whether the selector applies to the queried element and
// class set: the element must match exactly when the selector names one, and
// every selector class must be present in the query's set. Extra query
// classes are ignored.
func (s *Selector) Matches(element string, classes collections.Set[string]) bool {
	if s.Element != nil && s.Element.Node != element {
		return false
	}
	for _, c := range s.Classes {
		if !classes.Has(c.Node) {
			return false
		}
	}
	return true
}

// String renders the selector in source notation for diagnostics.
func (s *Selector) String() string {
	var b strings.Builder
	if s.Element != nil {
		b.WriteString(s.Element.Node)
	}
	for _, c := range s.Classes {
		b.WriteByte('.')
		b.WriteString(c.Node)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Rule pairs a selector with the style its body declared. Immutable once
// parsed.
type Rule struct {
	Selector Selector
	Style    style.Style
}

// Stylesheet is an ordered list of rules in source declaration order,
// immutable after construction. A Stylesheet only exists fully parsed; a
// failed parse produces no Stylesheet at all.
type Stylesheet struct {
	rules []Rule
}

// Rules returns the rules in declaration order.
func (s *Stylesheet) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules.
func (s *Stylesheet) Len() int {
	return len(s.rules)
}

// Resolve folds every matching rule, in declaration order, into acc via
// Patch and returns the result.
func (s *Stylesheet) Resolve(element string, classes collections.Set[string], acc style.Style) style.Style {
	for _, rule := range s.rules {
		if rule.Selector.Matches(element, classes) {
			acc = acc.Patch(rule.Style)
		}
	}
	return acc
}
