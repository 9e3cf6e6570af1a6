package meta

import "strings"

// AbstractMetaType is one occurrence of a type at a use site: a parameter, a
// return type or a field. It references a TypeEntry and carries the use-site
// decorations (indirection, const-ness, reference-ness, array-ness).
type AbstractMetaType struct {
	Entry *TypeEntry

	Indirections  int
	Reference     bool
	Constant      bool
	NativePointer bool

	// ArrayElement is non-nil for array occurrences.
	ArrayElement *AbstractMetaType

	// Instantiations are the concrete arguments of a container occurrence.
	Instantiations []*AbstractMetaType

	// OriginalTemplateType is the concrete type originally bound to a
	// template parameter, for occurrences inside generic classes.
	OriginalTemplateType *AbstractMetaType

	// OriginalTypeDescription is the pre-resolution spelling as authored.
	OriginalTypeDescription string
}

// IsPointer reports indirection or a native/opaque pointer mark.
func (t *AbstractMetaType) IsPointer() bool {
	return t.Indirections > 0 || t.NativePointer
}

func (t *AbstractMetaType) IsArray() bool     { return t.ArrayElement != nil }
func (t *AbstractMetaType) IsObject() bool    { return t.Entry != nil && t.Entry.IsObject() }
func (t *AbstractMetaType) IsContainer() bool { return t.Entry != nil && t.Entry.IsContainer() }
func (t *AbstractMetaType) IsEnum() bool      { return t.Entry != nil && t.Entry.IsEnum() }
func (t *AbstractMetaType) IsFlags() bool     { return t.Entry != nil && t.Entry.IsFlags() }

// Copy returns a transient shallow clone. Callers that need to flip flags for
// rendering clone first; the original occurrence is never mutated.
func (t *AbstractMetaType) Copy() *AbstractMetaType {
	c := *t
	return &c
}

// Signature renders the canonical host-language signature of the occurrence,
// e.g. "const Foo &", "Bar *" or "List<int >".
func (t *AbstractMetaType) Signature() string {
	if t.ArrayElement != nil {
		return t.ArrayElement.Signature() + "[]"
	}

	var b strings.Builder
	if t.Constant {
		b.WriteString("const ")
	}
	b.WriteString(t.Entry.Name)
	if len(t.Instantiations) > 0 {
		args := make([]string, len(t.Instantiations))
		for i, inst := range t.Instantiations {
			args[i] = inst.Signature()
		}
		b.WriteString("<" + strings.Join(args, ", ") + " >")
	}
	if t.Indirections > 0 {
		b.WriteString(" " + strings.Repeat("*", t.Indirections))
	}
	if t.Reference {
		b.WriteString(" &")
	}
	return b.String()
}

// AbstractMetaClass is a modeled class or struct. The enclosing-class and
// function back-references are non-owning; the model owns every entity.
type AbstractMetaClass struct {
	Name    string
	Package string

	Enclosing *AbstractMetaClass
	Entry     *TypeEntry

	Functions []*AbstractMetaFunction
}

// QualifiedName is the class's qualified host-language name.
func (c *AbstractMetaClass) QualifiedName() string { return c.Entry.Name }

// Constructors returns the class's constructors in declaration order.
func (c *AbstractMetaClass) Constructors() []*AbstractMetaFunction {
	var ctors []*AbstractMetaFunction
	for _, fn := range c.Functions {
		if fn.Constructor {
			ctors = append(ctors, fn)
		}
	}
	return ctors
}

// ImplicitConversions returns the single-argument non-copy constructors, the
// functions through which a value of another type converts to this class.
func (c *AbstractMetaClass) ImplicitConversions() []*AbstractMetaFunction {
	var convs []*AbstractMetaFunction
	for _, fn := range c.Functions {
		if fn.Constructor && !fn.CopyConstructor && !fn.Private && len(fn.Arguments) == 1 {
			convs = append(convs, fn)
		}
	}
	return convs
}

// AbstractMetaFunction is a method or constructor.
type AbstractMetaFunction struct {
	Name         string
	OriginalName string

	// Type is the return type; nil means void.
	Type      *AbstractMetaType
	Arguments []*AbstractMetaArgument

	Constructor     bool
	Private         bool
	UserAdded       bool
	CopyConstructor bool

	OwnerClass *AbstractMetaClass
}

// AbstractMetaArgument is one declared parameter of a function.
type AbstractMetaArgument struct {
	Name string
	Type *AbstractMetaType

	// Position is zero-based.
	Position int

	// OriginalDefaultValue is the default expression as authored;
	// DefaultValue is the current one after override processing.
	OriginalDefaultValue string
	DefaultValue         string

	// Removed arguments are dropped from generated signatures.
	Removed bool
}

// AbstractMetaEnum is a modeled enum.
type AbstractMetaEnum struct {
	Name    string
	Package string

	Entry     *TypeEntry
	Enclosing *AbstractMetaClass
}
