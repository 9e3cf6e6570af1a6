// Package gluegen is the reference consumer of the generation core: it emits
// one glue stub file per generated class plus a Go module index. Real
// language backends implement generator.ClassGenerator the same way.
package gluegen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bindgen/pkg/generator"
	"bindgen/pkg/meta"
	"github.com/dave/jennifer/jen"
	"github.com/thorn-jmh/errorst"
)

// boilerplate for one method stub; expanded per function through the
// template substitution engine
const callStubTemplate = `
    %RETURN_TYPE %TYPE_%FUNCTION_NAME(%ARGUMENTS)
    {
        dispatch("%FUNCTION_NAME", %ARGUMENT_NAMES);
    }
`

type GlueGenerator struct {
	gen *generator.Generator

	// class names that actually got a stub file, for the module index
	generated []string
}

func New(gen *generator.Generator) *GlueGenerator {
	return &GlueGenerator{gen: gen}
}

// FileNameForClass names the stub file after the class. A class without
// functions needs no glue and is skipped.
func (gg *GlueGenerator) FileNameForClass(cls *meta.AbstractMetaClass) string {
	if len(cls.Functions) == 0 {
		return ""
	}
	return generator.SnakeStyle.Format(cls.Name) + "_glue.cpp"
}

// GenerateClass writes the class's glue stubs: a default instance built from
// the minimal constructor, then one dispatch stub per public method.
func (gg *GlueGenerator) GenerateClass(w io.Writer, cls *meta.AbstractMetaClass) error {
	if lic := gg.gen.LicenseComment(); lic != "" {
		fmt.Fprintln(w, lic)
	}
	fmt.Fprintf(w, "// Glue for %s\n\n", generator.ClassTargetFullName(cls, true))

	if value, ok := gg.gen.MinimalClassConstructor(cls); ok {
		fmt.Fprintf(w, "static ::%s %s_default = %s;\n\n",
			cls.QualifiedName(), generator.SnakeStyle.Format(cls.Name), value)
	}

	for _, fn := range cls.Functions {
		if fn.Constructor || fn.Private {
			continue
		}
		code := gg.gen.ReplaceTemplateVariables(callStubTemplate, fn)
		generator.FormatCode(w, code, "")
	}

	gg.generated = append(gg.generated, cls.Name)
	return nil
}

// FinishGeneration emits module_index.go, a Go-side registry of everything
// that got glue code.
func (gg *GlueGenerator) FinishGeneration(g *generator.Generator) error {
	module := g.ModuleName()
	if module == "" {
		module = "bindings"
	}

	f := jen.NewFile(module)
	f.HeaderComment("Code generated by bindgen. DO NOT EDIT.")

	var names []jen.Code
	for _, name := range gg.generated {
		names = append(names, jen.Lit(name))
	}
	f.Comment("GeneratedClasses lists every class with generated glue code.")
	f.Var().Id("GeneratedClasses").Op("=").Index().String().Values(names...)

	dir := filepath.Join(g.OutputDirectory(), g.SubDirectoryForPackage(""))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errorst.NewError("failed to create index directory %s: %w", dir, err)
	}
	if err := f.Save(filepath.Join(dir, "module_index.go")); err != nil {
		return errorst.NewError("failed to write module index: %w", err)
	}
	return nil
}
