package insts

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rule selects the words w with w&Mask == Match and hands them to Decode.
type Rule[W constraints.Unsigned, R any] struct {
	Name   string
	Mask   W
	Match  W
	Decode func(w W) (R, error)
}

// Table is a declarative dispatch level: a set of disjoint rules. Adding an
// instruction class is adding a rule.
type Table[W constraints.Unsigned, R any] struct {
	arch  Arch
	name  string
	rules []Rule[W, R]
}

// NewTable builds a table and validates it. It panics if a rule's Match has
// bits outside its Mask, if a rule has no decoder, or if two rules can match
// the same word, so a duplicated or shadowed arm fails at initialization.
func NewTable[W constraints.Unsigned, R any](arch Arch, name string, rules ...Rule[W, R]) *Table[W, R] {
	for i, r := range rules {
		if r.Match&^r.Mask != 0 {
			panic(fmt.Sprintf("insts: %s table: rule %q match %#x outside mask %#x",
				name, r.Name, uint64(r.Match), uint64(r.Mask)))
		}
		if r.Decode == nil {
			panic(fmt.Sprintf("insts: %s table: rule %q has no decoder", name, r.Name))
		}
		for _, o := range rules[:i] {
			if Overlaps(r.Mask, r.Match, o.Mask, o.Match) {
				panic(fmt.Sprintf("insts: %s table: rules %q and %q overlap", name, o.Name, r.Name))
			}
		}
	}

	return &Table[W, R]{arch: arch, name: name, rules: rules}
}

// Overlaps reports whether some word satisfies both mask/match pairs.
func Overlaps[W constraints.Unsigned](maskA, matchA, maskB, matchB W) bool {
	return (matchA^matchB)&maskA&maskB == 0
}

// Lookup decodes w with the matching rule. A word no rule claims is
// unallocated at this level.
func (t *Table[W, R]) Lookup(w W) (R, error) {
	for i := range t.rules {
		r := &t.rules[i]
		if w&r.Mask == r.Match {
			return r.Decode(w)
		}
	}

	var zero R
	return zero, Unallocated(t.arch, uint32(w), t.name)
}

// Match returns the name of the rule claiming w, or "" if none does.
func (t *Table[W, R]) Match(w W) string {
	for _, r := range t.rules {
		if w&r.Mask == r.Match {
			return r.Name
		}
	}
	return ""
}

// Len returns the number of rules.
func (t *Table[W, R]) Len() int {
	return len(t.rules)
}
