package generator

import (
	"fmt"
	"strings"

	"bindgen/pkg/meta"
)

// The minimal constructor of a type is a textual expression that, best
// effort, default-constructs an instance of it. Emitters use it wherever a
// placeholder value is needed. The ok result is false when no safe default
// is known and the caller must special-case; a returned expression is a
// heuristic and may still fail to compile downstream.

// MinimalConstructor synthesizes the minimal constructor of a use-site
// occurrence.
func (g *Generator) MinimalConstructor(t *meta.AbstractMetaType) (string, bool) {
	// a reference to an object-category type cannot be default constructed
	if t == nil || (t.Reference && t.IsObject()) {
		return "", false
	}

	if t.IsContainer() {
		ctor := t.Signature()
		if strings.HasSuffix(ctor, "*") {
			return "0", true
		}
		ctor = strings.TrimPrefix(ctor, "const ")
		if strings.HasSuffix(ctor, "&") {
			ctor = strings.TrimSpace(ctor[:len(ctor)-1])
		}
		return fmt.Sprintf("::%s()", ctor), true
	}

	if t.NativePointer {
		return fmt.Sprintf("((%s*)0)", t.Entry.Name), true
	}
	if t.IsPointer() {
		return fmt.Sprintf("((::%s*)0)", t.Entry.Name), true
	}

	if t.Entry.IsComplex() {
		if ctor := t.Entry.DefaultConstructor; ctor != "" {
			return ctor, true
		}
		return g.MinimalClassConstructor(g.api.FindClass(t.Entry))
	}

	return g.MinimalEntryConstructor(t.Entry)
}

// MinimalEntryConstructor synthesizes the minimal constructor of a named
// type entry.
func (g *Generator) MinimalEntryConstructor(entry *meta.TypeEntry) (string, bool) {
	switch {
	case entry == nil:
		return "", false

	case entry.IsHostPrimitive():
		return fmt.Sprintf("((%s)0)", entry.Name), true

	case entry.IsEnum() || entry.IsFlags():
		return fmt.Sprintf("((::%s)0)", entry.Name), true

	case entry.IsPrimitive():
		// A user-defined primitive without a configured default constructor
		// gets the empty call heuristically. If this is wrong the build of
		// the generated bindings will tell; the configuration is expected
		// to supply an override then.
		if ctor := entry.DefaultConstructor; ctor != "" {
			return ctor, true
		}
		return fmt.Sprintf("::%s()", entry.Name), true
	}

	return "", false
}

// MinimalClassConstructor synthesizes the minimal constructor of a modeled
// class by searching its eligible constructors, cheapest first.
func (g *Generator) MinimalClassConstructor(cls *meta.AbstractMetaClass) (string, bool) {
	if cls == nil {
		return "", false
	}
	if cls.Entry.HasDefaultConstructor {
		return cls.Entry.DefaultConstructor, true
	}

	ctors := cls.Constructors()
	maxArgs := 0
	for _, ctor := range ctors {
		if ctor.UserAdded || ctor.Private || ctor.CopyConstructor {
			continue
		}
		numArgs := len(ctor.Arguments)
		if numArgs == 0 {
			maxArgs = 0
			break
		}
		if numArgs > maxArgs {
			maxArgs = numArgs
		}
	}

	// a zero-argument constructor, or no eligible constructor at all: the
	// plain empty call
	if maxArgs == 0 {
		return fmt.Sprintf("::%s()", cls.QualifiedName()), true
	}

	var candidates []*meta.AbstractMetaFunction

	// Pass A: constructors whose parameters are host primitives, enums or
	// pointers only. Smallest arity first; the first satisfied candidate
	// wins.
	for i := 1; i <= maxArgs; i++ {
		for _, ctor := range ctors {
			if ctor.UserAdded || ctor.Private || ctor.CopyConstructor {
				continue
			}
			if len(ctor.Arguments) != i {
				continue
			}

			var args []string
			for _, arg := range ctor.Arguments {
				entry := arg.Type.Entry
				if entry == cls.Entry {
					args = nil
					break
				}

				// an override-tracked default value satisfies the candidate
				// up to this parameter
				if arg.OriginalDefaultValue != "" {
					if arg.DefaultValue != "" && arg.DefaultValue != arg.OriginalDefaultValue {
						args = append(args, arg.DefaultValue)
					}
					break
				}

				if entry.IsHostPrimitive() || entry.IsEnum() || arg.Type.IsPointer() {
					value, ok := g.MinimalConstructor(arg.Type)
					if !ok {
						args = nil
						break
					}
					args = append(args, value)
				} else {
					args = nil
					break
				}
			}

			if len(args) > 0 {
				return fmt.Sprintf("::%s(%s)",
					cls.QualifiedName(), strings.Join(args, ", ")), true
			}
			candidates = append(candidates, ctor)
		}
	}

	// Pass B: any constructible parameter type, value types and user
	// primitives included, built recursively.
	for _, ctor := range candidates {
		var args []string
		for _, arg := range ctor.Arguments {
			if arg.Type.Entry == cls.Entry {
				args = nil
				break
			}
			value, ok := g.MinimalConstructor(arg.Type)
			if !ok {
				args = nil
				break
			}
			args = append(args, value)
		}
		if len(args) > 0 {
			return fmt.Sprintf("::%s(%s)",
				cls.QualifiedName(), strings.Join(args, ", ")), true
		}
	}

	return "", false
}
