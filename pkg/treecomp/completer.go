package treecomp

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrNoLister is returned by New when no Lister is configured.
var ErrNoLister = errors.New("treecomp: a Lister is required")

// Config holds everything needed to construct a Completer.
type Config struct {
	// Lister enumerates children of a node. Required.
	Lister Lister

	// Containers decides whether a result denotes a container when the
	// lister did not self-declare it with a trailing separator. Optional;
	// without it, non-self-declared results are never suffixed.
	Containers ContainerPredicate

	// Filter drops leaf matches before formatting. Optional.
	Filter Filter

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger

	// Options controls splitting, matching and result formatting.
	Options Options
}

// Completer walks a hierarchy one segment at a time and produces completions
// for a partially-typed word. A Completer is stateless across calls and safe
// to reuse; every call's working state is local to that call.
type Completer struct {
	lister     Lister
	containers ContainerPredicate
	filter     Filter
	logger     *zap.Logger
	opts       Options
}

// New creates a Completer. A missing Lister is a configuration error and is
// reported here, before any matching could begin.
func New(cfg Config) (*Completer, error) {
	if cfg.Lister == nil {
		return nil, ErrNoLister
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Completer{
		lister:     cfg.Lister,
		containers: cfg.Containers,
		filter:     cfg.Filter,
		logger:     logger,
		opts:       cfg.Options,
	}, nil
}

// Complete returns the completions for word, resolved relative to
// startingPath. Results come back in candidate discovery order, then lister
// order within each candidate, trimmed of the startingPath prefix so they
// stay in word's own frame. Overlapping candidates (possible under
// case-insensitive or dash-mapped matching) can produce duplicate results;
// they are returned as-is, not deduplicated.
//
// "No completions" is a normal outcome and yields an empty, non-nil slice.
// An error is returned only when the lister itself fails, in which case the
// descent is aborted with no partial results.
func (c *Completer) Complete(word string, startingPath string) ([]string, error) {
	sep := c.opts.sep()

	// strings.Split never returns an empty slice, and a trailing separator
	// already yields a trailing empty segment, so no fixups are needed.
	segments := strings.Split(word, sep)
	leaf := segments[len(segments)-1]
	intermediate := segments[:len(segments)-1]
	if len(intermediate) == 0 {
		// An empty set of intermediate segments means "anything
		// directly under startingPath".
		intermediate = []string{""}
	}

	candidates, err := c.descend(intermediate, startingPath, sep)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		c.logger.Debug(
			"completion short-circuited",
			zap.String("word", word),
			zap.String("startingPath", startingPath),
		)
		return []string{}, nil
	}

	results, err := c.leafPass(leaf, candidates, startingPath, sep)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(
		"completion finished",
		zap.String("word", word),
		zap.String("startingPath", startingPath),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// descend walks the intermediate segments, maintaining the ordered set of
// candidate ancestor paths that satisfy every segment matched so far. The
// set can branch (several real entries matching one folded segment) and
// later collapse again. A level that matches nothing empties the set, which
// aborts the whole completion.
func (c *Completer) descend(segments []string, startingPath string, sep string) ([]string, error) {
	candidates := []string{startingPath}

	for i, segment := range segments {
		// An empty trailing segment matches the container itself:
		// "a//" or a lone "/" narrows nothing further.
		if i == len(segments)-1 && segment == "" {
			break
		}

		matcher := newSegmentMatcher(segment, c.opts)
		expand := c.opts.ExpandIntermediateSegments &&
			len(segment) <= c.opts.ExpandIntermediateSegmentsMaxLen

		next := make([]string, 0, len(candidates))
		for _, dir := range candidates {
			entries, err := c.lister.ListEntries(dir, segment, true)
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if expand {
					if !matcher.matchesPrefix(entry) {
						continue
					}
				} else if !matcher.matchesExact(entry) {
					continue
				}
				next = append(next, joinPath(dir, entry, sep))
			}
		}

		if len(next) == 0 {
			return nil, nil
		}
		candidates = next
	}

	return candidates, nil
}

// leafPass lists each surviving candidate once more, keeps the entries the
// in-progress leaf segment is a prefix of, and formats them into results.
func (c *Completer) leafPass(leaf string, candidates []string, startingPath string, sep string) ([]string, error) {
	matcher := newSegmentMatcher(leaf, c.opts)
	cut := trimLength(startingPath, sep)

	results := make([]string, 0)
	for _, dir := range candidates {
		entries, err := c.lister.ListEntries(dir, leaf, false)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !matcher.matchesPrefix(entry) {
				continue
			}

			resolved := joinPath(dir, entry, sep)
			if c.filter != nil && !c.filter.Keep(resolved) {
				continue
			}

			result := resolved
			if cut <= len(result) {
				result = result[cut:]
			}
			if c.opts.ResultPrefix != "" {
				result = c.opts.ResultPrefix + result
			}

			// A trailing separator from the lister wins; the
			// predicate is only asked about undeclared entries,
			// and it sees the resolvable pre-trim path.
			if !strings.HasSuffix(result, sep) &&
				c.containers != nil && c.containers.IsContainer(resolved) {
				result += sep
			}

			results = append(results, result)
		}
	}

	return results, nil
}

// joinPath joins a directory and an entry name, inserting the separator only
// when the directory is non-empty and does not already end with it. This
// keeps candidate paths free of doubled separators.
func joinPath(dir string, entry string, sep string) string {
	if dir == "" || strings.HasSuffix(dir, sep) {
		return dir + entry
	}
	return dir + sep + entry
}

// trimLength is the number of leading bytes stripped from every resolved
// path so results stay relative to the word being completed rather than to
// the starting path.
func trimLength(startingPath string, sep string) int {
	if startingPath == "" || strings.HasSuffix(startingPath, sep) {
		return len(startingPath)
	}
	return len(startingPath) + len(sep)
}
