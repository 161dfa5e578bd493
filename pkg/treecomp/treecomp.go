// Package treecomp implements a hierarchical token completion engine.
// Given a partially-typed, separator-delimited path-like string, it walks a
// tree structure one segment at a time and returns the set of valid
// completions, without ever materializing the whole tree. The tree itself is
// abstracted behind a caller-supplied Lister, so the engine can back tab
// completion for anything organized as nested namespaces: filesystem paths,
// module hierarchies, nested configuration keys.
package treecomp

// Lister enumerates the children of a node in the hierarchy. It is the one
// required collaborator of the engine.
type Lister interface {
	// ListEntries returns the names of entries under path that are worth
	// considering for the given segment. Names must be relative to path,
	// not full paths. A name ending in the configured separator declares
	// the entry to be a container (e.g. a directory), which lets the
	// engine skip the ContainerPredicate for it.
	//
	// path may be empty, meaning the root of the hierarchy. intermediate
	// is true while the engine is descending through already-typed
	// segments and false for the final, in-progress segment.
	//
	// Returning more entries than match is fine; the engine filters.
	// A returned error aborts the whole completion immediately.
	ListEntries(path string, segment string, intermediate bool) ([]string, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(path string, segment string, intermediate bool) ([]string, error)

// ListEntries calls f.
func (f ListerFunc) ListEntries(path string, segment string, intermediate bool) ([]string, error) {
	return f(path, segment, intermediate)
}

// ContainerPredicate reports whether a resolved path denotes a container
// (a node that may have children). It is only consulted for entries whose
// name does not already end in the separator; a Lister that always
// self-declares containers makes the predicate unnecessary.
type ContainerPredicate interface {
	IsContainer(path string) bool
}

// ContainerPredicateFunc adapts a function to the ContainerPredicate interface.
type ContainerPredicateFunc func(path string) bool

// IsContainer calls f.
func (f ContainerPredicateFunc) IsContainer(path string) bool {
	return f(path)
}

// Filter decides whether a matched leaf entry is kept. It sees the full
// resolved path, before any trimming or result formatting.
type Filter interface {
	Keep(path string) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(path string) bool

// Keep calls f.
func (f FilterFunc) Keep(path string) bool {
	return f(path)
}
