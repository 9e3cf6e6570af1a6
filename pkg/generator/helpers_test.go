package generator_test

import (
	"bindgen/pkg/generator"
	"bindgen/pkg/meta"
	"go.uber.org/zap"
)

// fixture builders shared by the package's tests

func hostPrimitive(name string) *meta.TypeEntry {
	return &meta.TypeEntry{
		Name:           name,
		Kind:           meta.KindPrimitive,
		HostPrimitive:  true,
		CodeGeneration: meta.GenerateAll,
	}
}

func userPrimitive(name, defaultCtor string) *meta.TypeEntry {
	return &meta.TypeEntry{
		Name:               name,
		Kind:               meta.KindPrimitive,
		DefaultConstructor: defaultCtor,
		CodeGeneration:     meta.GenerateAll,
	}
}

func enumEntry(name string) *meta.TypeEntry {
	return &meta.TypeEntry{Name: name, Kind: meta.KindEnum, CodeGeneration: meta.GenerateAll}
}

func containerEntry(name string) *meta.TypeEntry {
	return &meta.TypeEntry{Name: name, Kind: meta.KindContainer, CodeGeneration: meta.GenerateAll}
}

func typesystemEntry(pkg string) *meta.TypeEntry {
	return &meta.TypeEntry{Name: pkg, Kind: meta.KindTypeSystem, CodeGeneration: meta.GenerateAll}
}

func valueClass(name, pkg string) *meta.AbstractMetaClass {
	entry := &meta.TypeEntry{
		Name:           name,
		Package:        pkg,
		Kind:           meta.KindComplex,
		ComplexKind:    meta.ValueType,
		CodeGeneration: meta.GenerateAll,
	}
	return &meta.AbstractMetaClass{Name: name, Package: pkg, Entry: entry}
}

func objectClass(name, pkg string) *meta.AbstractMetaClass {
	entry := &meta.TypeEntry{
		Name:           name,
		Package:        pkg,
		Kind:           meta.KindComplex,
		ComplexKind:    meta.ObjectType,
		CodeGeneration: meta.GenerateAll,
	}
	return &meta.AbstractMetaClass{Name: name, Package: pkg, Entry: entry}
}

func typeOf(entry *meta.TypeEntry) *meta.AbstractMetaType {
	return &meta.AbstractMetaType{Entry: entry}
}

func arg(name string, t *meta.AbstractMetaType) *meta.AbstractMetaArgument {
	return &meta.AbstractMetaArgument{Name: name, Type: t}
}

// addCtor appends a constructor built from args, numbering positions.
func addCtor(cls *meta.AbstractMetaClass, args ...*meta.AbstractMetaArgument) *meta.AbstractMetaFunction {
	for i, a := range args {
		a.Position = i
	}
	fn := &meta.AbstractMetaFunction{
		Name:         cls.Name,
		OriginalName: cls.Name,
		Constructor:  true,
		Arguments:    args,
		OwnerClass:   cls,
	}
	cls.Functions = append(cls.Functions, fn)
	return fn
}

func newAPI(entries []*meta.TypeEntry, classes ...*meta.AbstractMetaClass) *meta.API {
	reg := meta.NewRegistry()
	for _, e := range entries {
		reg.Add(e)
	}
	for _, cls := range classes {
		reg.Add(cls.Entry)
	}

	api := &meta.API{Registry: reg, Classes: classes}
	for _, e := range reg.Entries {
		switch e.Kind {
		case meta.KindPrimitive:
			api.Primitives = append(api.Primitives, e)
		case meta.KindContainer:
			api.Containers = append(api.Containers, e)
		}
	}
	return api
}

func newTestGenerator(api *meta.API) *generator.Generator {
	return generator.NewGenerator(api, zap.NewNop().Sugar())
}
