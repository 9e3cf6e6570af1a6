package meta

import (
	"github.com/thorn-jmh/errorst"
)

var (
	ErrUnresolvedType = errorst.NewError("cannot resolve type reference")
	ErrInvalidModel   = errorst.NewError("invalid model document")
)

// link turns a decoded document into the API model, resolving every by-name
// reference into a pointer.
func link(doc *document) (*API, error) {
	reg := NewRegistry()

	// first: create entries
	for _, ed := range doc.TypeEntries {
		if ed.Name == "" || ed.Kind == "" {
			return nil, errorst.Wrap(ErrInvalidModel, "type entry without name or kind: %+v", ed)
		}

		entry := &TypeEntry{
			Name:                  ed.Name,
			Package:               ed.Package,
			Kind:                  ed.Kind,
			CodeGeneration:        GenerateAll,
			HostPrimitive:         ed.HostPrimitive,
			DefaultConstructor:    ed.DefaultConstructor,
			HasDefaultConstructor: ed.HasDefaultConstructor,
			ComplexKind:           ed.ComplexKind,
			GenericClass:          ed.GenericClass,
		}
		if ed.Generate != nil && !*ed.Generate {
			entry.CodeGeneration = GenerateNothing
		}
		if entry.Kind == KindComplex && entry.ComplexKind == "" {
			entry.ComplexKind = ValueType
		}
		if entry.DefaultConstructor != "" {
			entry.HasDefaultConstructor = true
		}
		reg.Add(entry)
	}

	// second: resolve flags origins
	for _, ed := range doc.TypeEntries {
		if ed.Origin == "" {
			continue
		}
		entry := reg.Find(ed.Name)
		origin := reg.Find(ed.Origin)
		if origin == nil {
			return nil, errorst.Wrap(ErrUnresolvedType, "flags origin <%s> of %s", ed.Origin, ed.Name)
		}
		entry.Origin = origin
	}

	api := &API{Registry: reg}
	for _, entry := range reg.Entries {
		switch entry.Kind {
		case KindPrimitive:
			api.Primitives = append(api.Primitives, entry)
		case KindContainer:
			api.Containers = append(api.Containers, entry)
		}
	}

	// third: create classes, then link enclosing classes and functions
	byName := make(map[string]*AbstractMetaClass)
	for _, cd := range doc.Classes {
		entry := reg.Find(cd.TypeEntry)
		if entry == nil {
			return nil, errorst.Wrap(ErrUnresolvedType, "type entry <%s> of class %s", cd.TypeEntry, cd.Name)
		}
		cls := &AbstractMetaClass{
			Name:    cd.Name,
			Package: cd.Package,
			Entry:   entry,
		}
		api.Classes = append(api.Classes, cls)
		byName[cd.Name] = cls
	}
	for i, cd := range doc.Classes {
		cls := api.Classes[i]
		if cd.Enclosing != "" {
			enc, ok := byName[cd.Enclosing]
			if !ok {
				return nil, errorst.Wrap(ErrUnresolvedType, "enclosing class <%s> of %s", cd.Enclosing, cd.Name)
			}
			cls.Enclosing = enc
		}
		for _, fd := range cd.Functions {
			fn, err := linkFunction(reg, fd)
			if err != nil {
				return nil, errorst.Wrap(err, "failed to link function <%s> of class %s", fd.Name, cd.Name)
			}
			fn.OwnerClass = cls
			cls.Functions = append(cls.Functions, fn)
		}
	}

	// fourth: global functions and enums
	for _, fd := range doc.GlobalFunctions {
		fn, err := linkFunction(reg, fd)
		if err != nil {
			return nil, errorst.Wrap(err, "failed to link global function <%s>", fd.Name)
		}
		api.GlobalFunctions = append(api.GlobalFunctions, fn)
	}
	for _, ed := range doc.GlobalEnums {
		entry := reg.Find(ed.TypeEntry)
		if entry == nil {
			return nil, errorst.Wrap(ErrUnresolvedType, "type entry <%s> of enum %s", ed.TypeEntry, ed.Name)
		}
		en := &AbstractMetaEnum{
			Name:    ed.Name,
			Package: ed.Package,
			Entry:   entry,
		}
		if ed.Enclosing != "" {
			enc, ok := byName[ed.Enclosing]
			if !ok {
				return nil, errorst.Wrap(ErrUnresolvedType, "enclosing class <%s> of enum %s", ed.Enclosing, ed.Name)
			}
			en.Enclosing = enc
		}
		api.GlobalEnums = append(api.GlobalEnums, en)
	}

	return api, nil
}

func linkFunction(reg *Registry, fd *functionDoc) (*AbstractMetaFunction, error) {
	fn := &AbstractMetaFunction{
		Name:            fd.Name,
		OriginalName:    fd.OriginalName,
		Constructor:     fd.Constructor,
		Private:         fd.Private,
		UserAdded:       fd.UserAdded,
		CopyConstructor: fd.CopyConstructor,
	}
	if fn.OriginalName == "" {
		fn.OriginalName = fn.Name
	}

	if fd.ReturnType != nil {
		t, err := linkType(reg, fd.ReturnType)
		if err != nil {
			return nil, errorst.Wrap(err, "return type")
		}
		fn.Type = t
	}

	for i, ad := range fd.Arguments {
		t, err := linkType(reg, ad.Type)
		if err != nil {
			return nil, errorst.Wrap(err, "argument <%s>", ad.Name)
		}
		fn.Arguments = append(fn.Arguments, &AbstractMetaArgument{
			Name:                 ad.Name,
			Type:                 t,
			Position:             i,
			OriginalDefaultValue: ad.OriginalDefaultValue,
			DefaultValue:         ad.DefaultValue,
			Removed:              ad.Removed,
		})
	}

	return fn, nil
}

func linkType(reg *Registry, td *typeDoc) (*AbstractMetaType, error) {
	if td == nil {
		return nil, errorst.Wrap(ErrInvalidModel, "missing type occurrence")
	}
	entry := reg.Find(td.TypeEntry)
	if entry == nil {
		return nil, errorst.Wrap(ErrUnresolvedType, "type entry <%s>", td.TypeEntry)
	}

	t := &AbstractMetaType{
		Entry:                   entry,
		Indirections:            td.Indirections,
		Reference:               td.Reference,
		Constant:                td.Constant,
		NativePointer:           td.NativePointer,
		OriginalTypeDescription: td.OriginalTypeDescription,
	}

	if td.ArrayElement != nil {
		elem, err := linkType(reg, td.ArrayElement)
		if err != nil {
			return nil, errorst.Wrap(err, "array element")
		}
		t.ArrayElement = elem
	}
	for _, inst := range td.Instantiations {
		it, err := linkType(reg, inst)
		if err != nil {
			return nil, errorst.Wrap(err, "instantiation")
		}
		t.Instantiations = append(t.Instantiations, it)
	}
	if td.OriginalTemplateType != nil {
		ot, err := linkType(reg, td.OriginalTemplateType)
		if err != nil {
			return nil, errorst.Wrap(err, "original template type")
		}
		t.OriginalTemplateType = ot
	}

	return t, nil
}
