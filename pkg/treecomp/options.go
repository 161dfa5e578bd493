package treecomp

// DefaultPathSep is the separator used when Options.PathSep is left empty.
const DefaultPathSep = "/"

// Options controls how segments are split, matched and formatted.
// The zero value is a valid configuration: "/" separator, case-sensitive,
// exact intermediate matching.
type Options struct {
	// PathSep is the literal string delimiting segments. It is used for
	// splitting the input word, joining candidate paths, and
	// trailing-separator tests. Empty selects DefaultPathSep.
	PathSep string

	// CaseInsensitive folds case on both sides of every segment/entry
	// comparison. Simple folding only; no locale-aware collation.
	CaseInsensitive bool

	// MapDashUnderscore normalizes '_' to '-' on both sides of every
	// comparison, so typing "my-f" completes an entry named "my_file".
	MapDashUnderscore bool

	// ExpandIntermediateSegments allows intermediate segments to match
	// entries by prefix instead of exactly, so typing "h/doc" can descend
	// through "home". The final segment is always matched by prefix
	// regardless of this setting.
	ExpandIntermediateSegments bool

	// ExpandIntermediateSegmentsMaxLen bounds expansion: an intermediate
	// segment longer than this must still match exactly. Only meaningful
	// when ExpandIntermediateSegments is set.
	ExpandIntermediateSegmentsMaxLen int

	// ResultPrefix is prepended to every returned completion after the
	// starting path has been trimmed off.
	ResultPrefix string
}

// sep returns the effective separator.
func (o Options) sep() string {
	if o.PathSep == "" {
		return DefaultPathSep
	}
	return o.PathSep
}
