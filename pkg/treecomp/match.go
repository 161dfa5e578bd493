package treecomp

import "strings"

// segmentMatcher matches entry names against one segment of the input word.
// All patterns here are literal text plus anchoring, so plain string
// comparisons are enough; no regular expressions are involved.
type segmentMatcher struct {
	segment string // normalized form of the typed segment
	sep     string
	fold    bool
	mapDash bool
}

func newSegmentMatcher(segment string, opts Options) segmentMatcher {
	m := segmentMatcher{
		sep:     opts.sep(),
		fold:    opts.CaseInsensitive,
		mapDash: opts.MapDashUnderscore,
	}
	m.segment = m.normalize(segment)
	return m
}

// normalize applies the configured dash/underscore mapping and case folding.
func (m segmentMatcher) normalize(s string) string {
	if m.mapDash {
		s = strings.ReplaceAll(s, "_", "-")
	}
	if m.fold {
		s = strings.ToLower(s)
	}
	return s
}

// matchesPrefix reports whether entry starts with the segment. Used for the
// leaf segment, and for intermediate segments when expansion applies.
func (m segmentMatcher) matchesPrefix(entry string) bool {
	return strings.HasPrefix(m.normalize(entry), m.segment)
}

// matchesExact reports whether entry equals the segment, optionally followed
// by a single trailing separator (entries may self-declare as containers).
// The separator is normalized like the rest of the pattern, so a separator
// containing letters or underscores still matches under folding or mapping.
func (m segmentMatcher) matchesExact(entry string) bool {
	e := m.normalize(entry)
	return e == m.segment || e == m.segment+m.normalize(m.sep)
}
