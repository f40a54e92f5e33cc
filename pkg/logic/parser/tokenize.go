package parser

import (
	"sort"
	"strings"
	"unicode"
)

// Prefixes recognised in command arguments.
const (
	PrefixName     = "n/"
	PrefixPhone    = "p/"
	PrefixEmail    = "e/"
	PrefixAddress  = "a/"
	PrefixTag      = "t/"
	PrefixDue      = "d/"
	PrefixAssignee = "i/"
)

// ArgMap holds the values found for each prefix, in order of appearance, and
// the preamble before the first prefix.
type ArgMap struct {
	Preamble string
	values   map[string][]string
}

// Value returns the last value given for prefix.
func (m ArgMap) Value(prefix string) (string, bool) {
	v := m.values[prefix]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

func (m ArgMap) All(prefix string) []string {
	return m.values[prefix]
}

func (m ArgMap) Has(prefix string) bool {
	return len(m.values[prefix]) > 0
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows whitespace.
func Tokenize(args string, prefixes ...string) ArgMap {
	type hit struct {
		at     int
		prefix string
	}
	padded := " " + args
	var hits []hit
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(padded[from:], p)
			if i < 0 {
				break
			}
			at := from + i
			if at > 0 && unicode.IsSpace(rune(padded[at-1])) {
				hits = append(hits, hit{at: at, prefix: p})
			}
			from = at + 1
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	m := ArgMap{values: make(map[string][]string)}
	end := len(padded)
	if len(hits) > 0 {
		end = hits[0].at
	}
	m.Preamble = strings.TrimSpace(padded[:end])
	for i, h := range hits {
		stop := len(padded)
		if i+1 < len(hits) {
			stop = hits[i+1].at
		}
		v := strings.TrimSpace(padded[h.at+len(h.prefix) : stop])
		m.values[h.prefix] = append(m.values[h.prefix], v)
	}
	return m
}
