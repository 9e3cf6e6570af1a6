package generator

import (
	"strings"

	"bindgen/pkg/meta"
)

const constLen = len("const")

// TranslateType renders a use-site type occurrence into binding-compatible
// text. A nil occurrence is the void return type. The input is never
// mutated: when flags have to be stripped, a transient clone is rendered and
// discarded.
func (g *Generator) TranslateType(t *meta.AbstractMetaType, context *meta.AbstractMetaClass, opts Options) string {
	// inside a generic class, an occurrence of the class's own template
	// parameter stands for the concrete type originally bound to it
	if context != nil && t != nil &&
		context.Entry.GenericClass && t.OriginalTemplateType != nil {
		t = t.OriginalTemplateType
	}

	switch {
	case t == nil:
		return "void"
	case t.IsArray():
		return g.TranslateType(t.ArrayElement, context, opts) + "[]"
	case opts.EnumAsInts && (t.IsEnum() || t.IsFlags()):
		return "int"
	}

	if opts.OriginalName {
		s := strings.TrimSpace(t.OriginalTypeDescription)
		if opts.ExcludeReference && strings.HasSuffix(s, "&") {
			s = s[:len(s)-1]
		}

		// remove only the last const, to not touch one that belongs to a
		// template argument
		if opts.ExcludeConst {
			index := strings.LastIndex(s, "const")
			if index >= 0 && index >= len(s)-(constLen+1) {
				s = s[:index] + s[index+constLen:]
			}
		}
		return s
	}

	if opts.ExcludeConst || opts.ExcludeReference {
		copyType := t.Copy()

		if opts.ExcludeConst {
			copyType.Constant = false
		}
		if opts.ExcludeReference {
			copyType.Reference = false
		}

		s := copyType.Signature()
		if !copyType.Entry.IsVoid() && !copyType.Entry.IsHostPrimitive() {
			s = "::" + s
		}
		return s
	}

	return t.Signature()
}
