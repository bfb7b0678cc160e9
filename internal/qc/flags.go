package qc

import (
	"sort"
	"strings"
)

// map[subjectID] => set of flags
type Flags map[string]flagSet

// AddFlag records one flag for a subject. Adding the same flag twice
// is a no-op.
func (f Flags) AddFlag(subject, flag string) {
	set, exists := f[subject]
	if !exists {
		set = make(flagSet)
	}
	set[flag] = struct{}{}
	f[subject] = set
}

// Get returns the sorted, pipe-joined flags of a subject, or the empty
// string when the subject is clean.
func (f Flags) Get(subject string) string {
	return f[subject].String()
}

// Counts tallies how many subjects carry each flag.
func (f Flags) Counts() map[string]int {
	counts := make(map[string]int)
	for _, set := range f {
		for v := range set {
			counts[v]++
		}
	}

	return counts
}

type flagSet map[string]struct{}

func (fs flagSet) String() string {
	if len(fs) == 0 {
		return ""
	}

	sb := make([]string, 0, len(fs))
	for v := range fs {
		sb = append(sb, v)
	}

	sort.Strings(sb)

	return strings.Join(sb, "|")
}
