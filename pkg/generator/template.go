package generator

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bindgen/pkg/meta"
)

// ReplaceTemplateVariables expands the fixed placeholder tokens of a
// boilerplate snippet with one function's concrete data. Substitution is
// literal; replacement text containing further tokens will be re-substituted,
// which is a contract on the configuration, not something enforced here.
//
//	%TYPE            owning class name (only if the function has one)
//	%1, %2, ...      argument names by 1-based position
//	%RETURN_TYPE     translated return type, default options
//	%FUNCTION_NAME   the function's original name
//	%ARGUMENT_NAMES  comma-joined argument names, removed arguments skipped
//	%ARGUMENTS       full parameter list, default values and removed
//	                 arguments skipped
func (g *Generator) ReplaceTemplateVariables(code string, fn *meta.AbstractMetaFunction) string {
	owner := fn.OwnerClass
	if owner != nil {
		code = strings.ReplaceAll(code, "%TYPE", owner.Name)
	}

	for _, arg := range fn.Arguments {
		code = strings.ReplaceAll(code, "%"+strconv.Itoa(arg.Position+1), arg.Name)
	}

	code = strings.ReplaceAll(code, "%RETURN_TYPE", g.TranslateType(fn.Type, owner, Options{}))
	code = strings.ReplaceAll(code, "%FUNCTION_NAME", fn.OriginalName)

	if strings.Contains(code, "%ARGUMENT_NAMES") {
		var buf strings.Builder
		g.WriteArgumentNames(&buf, fn, Options{SkipRemovedArguments: true})
		code = strings.ReplaceAll(code, "%ARGUMENT_NAMES", buf.String())
	}

	if strings.Contains(code, "%ARGUMENTS") {
		var buf strings.Builder
		g.WriteFunctionArguments(&buf, fn, Options{
			SkipDefaultValues:    true,
			SkipRemovedArguments: true,
		})
		code = strings.ReplaceAll(code, "%ARGUMENTS", buf.String())
	}

	return code
}

// WriteArgumentNames writes the comma-joined argument name list.
func (g *Generator) WriteArgumentNames(w io.Writer, fn *meta.AbstractMetaFunction, opts Options) {
	first := true
	for _, arg := range fn.Arguments {
		if opts.SkipRemovedArguments && arg.Removed {
			continue
		}
		if !first {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, arg.Name)
		first = false
	}
}

// WriteFunctionArguments writes the full parameter-list text of a function.
func (g *Generator) WriteFunctionArguments(w io.Writer, fn *meta.AbstractMetaFunction, opts Options) {
	first := true
	for _, arg := range fn.Arguments {
		if opts.SkipRemovedArguments && arg.Removed {
			continue
		}
		if !first {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%s %s", g.TranslateType(arg.Type, fn.OwnerClass, opts), arg.Name)
		if !opts.SkipDefaultValues && arg.DefaultValue != "" {
			fmt.Fprintf(w, " = %s", arg.DefaultValue)
		}
		first = false
	}
}
