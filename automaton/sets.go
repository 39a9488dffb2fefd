package automaton

import (
	"bytes"
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a transition label. Literal symbols are runes of the input
// expression.
type Symbol rune

// Epsilon is the symbol of transitions which do not consume input.
// It lies outside the range of valid runes, thus never colliding with a literal.
const Epsilon Symbol = -1

// IsEpsilon is a predicate.
func (sym Symbol) IsEpsilon() bool {
	return sym == Epsilon
}

func (sym Symbol) String() string {
	if sym == Epsilon {
		return "ε"
	}
	return string(rune(sym))
}

// --- State sets ------------------------------------------------------------

// StateSet is an ordered set of state names. Names with a common prefix and
// a numeric suffix are ordered numerically, i.e. "q2" sorts before "q10".
//
// The zero value is an empty set, ready to use. A nil *StateSet behaves like an
// empty set for all read operations.
type StateSet struct {
	set *treeset.Set
}

// NewStateSet creates a set containing the given names.
func NewStateSet(names ...string) *StateSet {
	S := &StateSet{set: treeset.NewWith(nameComparator)}
	S.Add(names...)
	return S
}

// Add inserts names into the set. Returns the set (for chaining).
func (S *StateSet) Add(names ...string) *StateSet {
	S.init()
	for _, n := range names {
		S.set.Add(n)
	}
	return S
}

// Remove deletes a name from the set, if present.
func (S *StateSet) Remove(name string) {
	if S == nil || S.set == nil {
		return
	}
	S.set.Remove(name)
}

// Contains is a predicate.
func (S *StateSet) Contains(name string) bool {
	if S == nil || S.set == nil {
		return false
	}
	return S.set.Contains(name)
}

// Size returns the number of names in the set.
func (S *StateSet) Size() int {
	if S == nil || S.set == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is a predicate.
func (S *StateSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the names of the set in order.
func (S *StateSet) Values() []string {
	if S == nil || S.set == nil {
		return nil
	}
	names := make([]string, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		names = append(names, it.Value().(string))
	}
	return names
}

// Union adds all names of other to S. Unlike in math, this is destructive!
// Returns S (for chaining).
func (S *StateSet) Union(other *StateSet) *StateSet {
	S.init()
	for _, n := range other.Values() {
		S.set.Add(n)
	}
	return S
}

func (S *StateSet) init() {
	if S.set == nil {
		S.set = treeset.NewWith(nameComparator)
	}
}

// Copy returns a new set with identical content.
func (S *StateSet) Copy() *StateSet {
	return NewStateSet(S.Values()...)
}

// Equals checks if S and other contain the same names.
func (S *StateSet) Equals(other *StateSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, n := range S.Values() {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

func (S *StateSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, n := range S.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
	}
	b.WriteString("}")
	return b.String()
}

// We need this for ordering state names. State names minted by the converter
// consist of a prefix and a serial number.
func nameComparator(a, b interface{}) int {
	s1, s2 := a.(string), b.(string)
	p1, n1, ok1 := splitName(s1)
	p2, n2, ok2 := splitName(s2)
	if ok1 && ok2 && p1 == p2 && n1 != n2 {
		return utils.IntComparator(n1, n2)
	}
	return utils.StringComparator(s1, s2)
}

func splitName(s string) (string, int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil { // overflow
		return s, 0, false
	}
	return s[:i], n, true
}

// sortNames sorts a slice of state names in the order of StateSet.
func sortNames(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		return nameComparator(a, b)
	})
}
