package meta

// Kind discriminates the variants of a TypeEntry.
type Kind string

const (
	KindVoid       Kind = "void"
	KindPrimitive  Kind = "primitive"
	KindComplex    Kind = "complex"
	KindContainer  Kind = "container"
	KindEnum       Kind = "enum"
	KindFlags      Kind = "flags"
	KindTypeSystem Kind = "typesystem"
)

// ComplexKind refines KindComplex entries.
type ComplexKind string

const (
	ValueType        ComplexKind = "value"
	ObjectType       ComplexKind = "object"
	SharedObjectType ComplexKind = "shared" // reference-counted object type
)

// CodeGeneration is the per-entry code generation bitmask.
type CodeGeneration uint

const (
	GenerateNothing    CodeGeneration = 0x0
	GenerateTargetLang CodeGeneration = 0x1
	GenerateHostCode   CodeGeneration = 0x2
	GenerateAll                       = GenerateTargetLang | GenerateHostCode
)

// TypeEntry is a named type in the modeled API's type system. One struct
// covers all kinds; the per-kind fields are only meaningful for their kind.
// Entries are built once by the parsing front end and never mutated here.
type TypeEntry struct {
	// Name is the qualified host-language name. For a typesystem marker it
	// is the dotted target package name instead.
	Name    string
	Package string
	Kind    Kind

	CodeGeneration CodeGeneration

	// HostPrimitive marks a built-in scalar of the host language, as
	// opposed to a user-defined primitive.
	HostPrimitive bool

	// DefaultConstructor is a user-supplied construction expression. Set on
	// primitive entries and as an override on complex entries.
	DefaultConstructor    string
	HasDefaultConstructor bool

	ComplexKind  ComplexKind
	GenericClass bool

	// Origin is the underlying enum entry of a flags entry.
	Origin *TypeEntry
}

func (e *TypeEntry) IsVoid() bool       { return e.Kind == KindVoid }
func (e *TypeEntry) IsPrimitive() bool  { return e.Kind == KindPrimitive }
func (e *TypeEntry) IsComplex() bool    { return e.Kind == KindComplex }
func (e *TypeEntry) IsContainer() bool  { return e.Kind == KindContainer }
func (e *TypeEntry) IsEnum() bool       { return e.Kind == KindEnum }
func (e *TypeEntry) IsFlags() bool      { return e.Kind == KindFlags }
func (e *TypeEntry) IsTypeSystem() bool { return e.Kind == KindTypeSystem }

// IsHostPrimitive returns true for built-in scalars of the host language.
func (e *TypeEntry) IsHostPrimitive() bool {
	return e.Kind == KindPrimitive && e.HostPrimitive
}

// IsObject returns true for object-category complex entries, reference
// counted ones included.
func (e *TypeEntry) IsObject() bool {
	return e.Kind == KindComplex &&
		(e.ComplexKind == ObjectType || e.ComplexKind == SharedObjectType)
}

// IsValue returns true for value-category complex entries.
func (e *TypeEntry) IsValue() bool {
	return e.Kind == KindComplex && e.ComplexKind == ValueType
}

// GenerateCode reports whether target language code is wanted for this entry.
func (e *TypeEntry) GenerateCode() bool {
	return e.CodeGeneration&GenerateTargetLang != 0
}
