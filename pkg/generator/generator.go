package generator

import (
	"io"
	"os"
	"path/filepath"

	"bindgen/pkg/meta"
	"github.com/thorn-jmh/errorst"
	"go.uber.org/zap"
)

// ClassGenerator supplies the target-language specifics the driver depends
// on: output file naming, per-class content emission, and a finishing step
// for cross-class artifacts. The driver itself knows nothing about the
// binding language.
type ClassGenerator interface {
	// FileNameForClass returns the output file name for cls. An empty name
	// means the class produces no artifact and is skipped; this is not an
	// error.
	FileNameForClass(cls *meta.AbstractMetaClass) string

	// GenerateClass writes the class's content into the output stream.
	GenerateClass(w io.Writer, cls *meta.AbstractMetaClass) error

	// FinishGeneration runs once after the last class, for cross-class
	// artifacts such as an aggregate module file.
	FinishGeneration(g *Generator) error
}

// GenerationPolicy optionally overrides the default inclusion policy, which
// generates a class when its type entry is marked for the target language.
type GenerationPolicy interface {
	ShouldGenerate(cls *meta.AbstractMetaClass) bool
}

// Generator drives code emission over an extracted API model. It owns the
// output location, the discovered package name and the generation counters;
// everything target-language specific comes in through a ClassGenerator.
type Generator struct {
	api *meta.API

	outDir         string
	licenseComment string
	packageName    string

	numGenerated        int
	numGeneratedWritten int

	logger *zap.SugaredLogger
}

// NewGenerator builds a generator over the extracted API model and discovers
// the target package name: the first typesystem marker in registry order
// with code generation enabled. A model without one gets an empty package
// name and a warning.
func NewGenerator(api *meta.API, logger *zap.SugaredLogger) *Generator {
	g := &Generator{api: api, logger: logger}
	for _, entry := range api.Registry.Entries {
		if entry.IsTypeSystem() && entry.GenerateCode() {
			g.packageName = entry.Name
			break
		}
	}
	if g.packageName == "" {
		g.logger.Warn("couldn't find the package name")
	}
	return g
}

func (g *Generator) Classes() []*meta.AbstractMetaClass            { return g.api.Classes }
func (g *Generator) GlobalFunctions() []*meta.AbstractMetaFunction { return g.api.GlobalFunctions }
func (g *Generator) GlobalEnums() []*meta.AbstractMetaEnum         { return g.api.GlobalEnums }
func (g *Generator) PrimitiveTypes() []*meta.TypeEntry             { return g.api.Primitives }
func (g *Generator) ContainerTypes() []*meta.TypeEntry             { return g.api.Containers }

func (g *Generator) FindEnum(entry *meta.TypeEntry) *meta.AbstractMetaEnum {
	return g.api.FindEnum(entry)
}

func (g *Generator) FindEnumForType(t *meta.AbstractMetaType) *meta.AbstractMetaEnum {
	return g.api.FindEnumForType(t)
}

// ImplicitConversions returns the conversion functions of a value-type
// entry's class, if the model has one.
func (g *Generator) ImplicitConversions(entry *meta.TypeEntry) []*meta.AbstractMetaFunction {
	if entry.IsValue() {
		if cls := g.api.FindClass(entry); cls != nil {
			return cls.ImplicitConversions()
		}
	}
	return nil
}

func (g *Generator) ImplicitConversionsForType(t *meta.AbstractMetaType) []*meta.AbstractMetaFunction {
	return g.ImplicitConversions(t.Entry)
}

func (g *Generator) PackageName() string     { return g.packageName }
func (g *Generator) OutputDirectory() string { return g.outDir }

func (g *Generator) SetOutputDirectory(outDir string) { g.outDir = outDir }

func (g *Generator) LicenseComment() string        { return g.licenseComment }
func (g *Generator) SetLicenseComment(text string) { g.licenseComment = text }

// NumGenerated is the number of classes that went through emission.
func (g *Generator) NumGenerated() int { return g.numGenerated }

// NumGeneratedAndWritten is the number of output files that actually changed
// on disk.
func (g *Generator) NumGeneratedAndWritten() int { return g.numGeneratedWritten }

// ShouldGenerate is the default inclusion policy.
func (g *Generator) ShouldGenerate(cls *meta.AbstractMetaClass) bool {
	return cls.Entry.GenerateCode()
}

// Generate iterates the class list in model order and emits one output file
// per included class through cg. A single class's failure is reported and
// does not abort the batch; only the finishing hook's error propagates.
func (g *Generator) Generate(cg ClassGenerator) error {
	policy, hasPolicy := cg.(GenerationPolicy)

	for _, cls := range g.api.Classes {
		include := g.ShouldGenerate(cls)
		if hasPolicy {
			include = policy.ShouldGenerate(cls)
		}
		if !include {
			continue
		}

		fileName := cg.FileNameForClass(cls)
		if fileName == "" {
			continue
		}
		g.logger.Debugf("generating: %s", fileName)

		path := filepath.Join(g.outDir, g.SubDirectoryForClass(cls), fileName)
		g.verifyDirectoryFor(path)

		out := NewFileOut(path)
		if err := cg.GenerateClass(out, cls); err != nil {
			g.logger.Warnf("failed to generate class <%s>: %v", cls.Name, err)
			g.numGenerated++
			continue
		}

		written, err := out.Done()
		if err != nil {
			g.logger.Warnf("failed to write %s: %v", path, err)
		}
		if written {
			g.numGeneratedWritten++
		}
		g.numGenerated++
	}

	if err := cg.FinishGeneration(g); err != nil {
		return errorst.Wrap(err, "failed to finish generation")
	}
	return nil
}

// verifyDirectoryFor creates the output file's directory on demand. Failure
// is only a warning; the write that follows will surface the real error.
func (g *Generator) verifyDirectoryFor(path string) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err == nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		g.logger.Warnf("unable to create directory '%s': %v", dir, err)
	}
}
