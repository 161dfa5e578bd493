// Package fscomplete provides filesystem path completion on top of the
// treecomp engine. It understands the prefix forms users actually type at a
// prompt (implicit relative, "./", "../", "~/", absolute) and preserves that
// form in the returned completions.
package fscomplete

import (
	"os"
	"strings"

	"github.com/atinylittleshell/treecomp/pkg/treecomp"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// osReadDir is a variable that can be overridden for testing.
var osReadDir = os.ReadDir

// Config controls how filesystem completions are matched.
type Config struct {
	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger

	// CaseInsensitive folds case when matching path segments.
	CaseInsensitive bool

	// MapDashUnderscore lets a typed '-' match a '_' in file names.
	MapDashUnderscore bool

	// ExpandIntermediateSegments lets short intermediate segments match
	// directories by prefix, so "fol/in" can descend through "folder1".
	// Bounded by ExpandIntermediateSegmentsMaxLen.
	ExpandIntermediateSegments       bool
	ExpandIntermediateSegmentsMaxLen int

	// ExcludeHidden drops dot-entries from results unless the segment
	// being completed itself starts with a dot.
	ExcludeHidden bool
}

// Completer completes filesystem paths.
type Completer struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a filesystem Completer.
func New(cfg Config) *Completer {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Completer{cfg: cfg, logger: logger}
}

// defaultCompleter backs the package-level GetFileCompletions.
var defaultCompleter = New(Config{})

// GetFileCompletions returns file path completions for the given prefix.
// Relative prefixes are resolved against currentDir. Directories are
// suffixed with "/". Unreadable or nonexistent directories yield an empty
// result, never an error; path completion at a prompt has no way to surface
// one usefully.
func GetFileCompletions(prefix string, currentDir string) []string {
	return defaultCompleter.Complete(prefix, currentDir)
}

// Complete returns file path completions for the given prefix, resolved
// against currentDir. Results keep the prefix form of the input: completing
// "./fo" yields "./folder/", completing "~/do" yields "~/docs/".
func (c *Completer) Complete(prefix string, currentDir string) []string {
	word, base, resultPrefix, err := splitPrefix(prefix, currentDir)
	if err != nil {
		c.logger.Debug("cannot resolve completion base", zap.String("prefix", prefix), zap.Error(err))
		return []string{}
	}

	var filter treecomp.Filter
	if c.cfg.ExcludeHidden && !strings.HasPrefix(lastSegment(word), ".") {
		filter = treecomp.FilterFunc(func(path string) bool {
			return !strings.HasPrefix(lastSegment(strings.TrimSuffix(path, "/")), ".")
		})
	}

	engine, err := treecomp.New(treecomp.Config{
		Lister: treecomp.ListerFunc(listDir),
		Filter: filter,
		Logger: c.logger,
		Options: treecomp.Options{
			CaseInsensitive:                  c.cfg.CaseInsensitive,
			MapDashUnderscore:                c.cfg.MapDashUnderscore,
			ExpandIntermediateSegments:       c.cfg.ExpandIntermediateSegments,
			ExpandIntermediateSegmentsMaxLen: c.cfg.ExpandIntermediateSegmentsMaxLen,
			ResultPrefix:                     resultPrefix,
		},
	})
	if err != nil {
		return []string{}
	}

	results, err := engine.Complete(word, base)
	if err != nil {
		return []string{}
	}
	return results
}

// listDir enumerates a directory for the engine. Directories self-declare
// with a trailing "/", so the engine never needs a container predicate and
// no extra stat calls happen per result. Listing failures (missing
// directory, permission denied) are reported as empty, which makes the
// engine short-circuit to an empty completion.
func listDir(path string, segment string, intermediate bool) ([]string, error) {
	entries, err := osReadDir(path)
	if err != nil {
		return nil, nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}

// splitPrefix breaks a typed prefix into the word handed to the engine, the
// directory that word is relative to, and the prefix to restore on results.
func splitPrefix(prefix string, currentDir string) (word, base, resultPrefix string, err error) {
	switch {
	case strings.HasPrefix(prefix, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", "", err
		}
		return prefix[2:], home, "~/", nil

	case strings.HasPrefix(prefix, "/"):
		return prefix[1:], "/", "/", nil

	case strings.HasPrefix(prefix, "./"):
		return prefix[2:], currentDir, "./", nil

	case strings.HasPrefix(prefix, "../"):
		word = prefix
		base = currentDir
		for strings.HasPrefix(word, "../") {
			word = word[3:]
			base = parentDir(base)
			resultPrefix += "../"
		}
		return word, base, resultPrefix, nil

	default:
		return prefix, currentDir, "", nil
	}
}

// parentDir is filepath.Dir without the "." result for empty input.
func parentDir(dir string) string {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return "/"
	}
	idx := strings.LastIndex(dir, "/")
	if idx < 0 {
		return "."
	}
	if idx == 0 {
		return "/"
	}
	return dir[:idx]
}

// lastSegment returns the part of a path after the final "/".
func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// QuoteSpaces wraps completions containing spaces in double quotes, so a
// shell-like consumer can insert them verbatim.
func QuoteSpaces(completions []string) []string {
	return lo.Map(completions, func(completion string, _ int) string {
		if strings.Contains(completion, " ") {
			return "\"" + completion + "\""
		}
		return completion
	})
}
