package generator

import (
	"os"
	"strings"

	"bindgen/pkg/meta"
)

// ModuleName is the last dot-delimited component of the discovered package
// name.
func (g *Generator) ModuleName() string {
	pkg := g.packageName
	return pkg[strings.LastIndex(pkg, ".")+1:]
}

// SubDirectoryForClass is the output subdirectory for a class, derived from
// its dotted package name.
func (g *Generator) SubDirectoryForClass(cls *meta.AbstractMetaClass) string {
	return g.SubDirectoryForPackage(cls.Package)
}

// SubDirectoryForPackage turns a dotted package name into a relative path.
// An empty package falls back to the generator's discovered package name.
func (g *Generator) SubDirectoryForPackage(pkg string) string {
	if pkg == "" {
		pkg = g.packageName
	}
	return strings.ReplaceAll(pkg, ".", string(os.PathSeparator))
}

// ClassTargetFullName is the class's dot-joined target-language name,
// prefixed outside-in with every enclosing class and optionally with the
// package.
func ClassTargetFullName(cls *meta.AbstractMetaClass, includePackage bool) string {
	return targetFullName(cls.Name, cls.Enclosing, cls.Package, includePackage)
}

// EnumTargetFullName is the enum counterpart of ClassTargetFullName.
func EnumTargetFullName(en *meta.AbstractMetaEnum, includePackage bool) string {
	return targetFullName(en.Name, en.Enclosing, en.Package, includePackage)
}

func targetFullName(name string, enclosing *meta.AbstractMetaClass, pkg string, includePackage bool) string {
	for ctx := enclosing; ctx != nil; ctx = ctx.Enclosing {
		name = ctx.Name + "." + name
	}
	if includePackage {
		name = pkg + "." + name
	}
	return name
}
