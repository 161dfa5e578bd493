package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// fuzzySuggestions ranks the entries of the innermost typed directory
// against the in-progress segment. It only kicks in when strict prefix
// completion produced nothing, so a typo like "flder" can still surface
// "folder1/".
func (m *Model) fuzzySuggestions(word string) []string {
	dir := ""
	leaf := word
	if idx := strings.LastIndex(word, "/"); idx >= 0 {
		dir = word[:idx+1]
		leaf = word[idx+1:]
	}
	if leaf == "" {
		return nil
	}

	all := m.completer.Complete(dir, m.cwd)
	if len(all) == 0 {
		return nil
	}

	names := lo.Map(all, func(path string, _ int) string {
		return path[len(dir):]
	})

	matches := fuzzy.Find(leaf, names)
	return lo.Map(matches, func(match fuzzy.Match, _ int) string {
		return all[match.Index]
	})
}
