package generator

// Options is the set of independent rendering capabilities honored by the
// type translator and the argument writers. The zero value renders canonical
// signatures with nothing excluded.
type Options struct {
	ExcludeConst     bool
	ExcludeReference bool
	EnumAsInts       bool
	OriginalName     bool

	SkipRemovedArguments bool
	SkipDefaultValues    bool
}
