package regex

import "strconv"

// DefaultNamePrefix is the prefix of state names minted by the converter.
const DefaultNamePrefix = "q"

// NameAllocator mints unique state names, consisting of a prefix and a serial
// number. The first name is prefix+"1".
type NameAllocator struct {
	prefix string
	serial int
}

// NewNameAllocator creates a name allocator for a prefix.
func NewNameAllocator(prefix string) *NameAllocator {
	return &NameAllocator{prefix: prefix}
}

// Next returns a fresh name.
func (na *NameAllocator) Next() string {
	na.serial++
	return na.prefix + strconv.Itoa(na.serial)
}

// Count returns the number of names minted so far.
func (na *NameAllocator) Count() int {
	return na.serial
}
