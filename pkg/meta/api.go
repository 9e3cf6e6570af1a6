package meta

// Registry holds every type entry of the model, grouped by name and kept in
// insertion order. Insertion order matters: package-name discovery picks the
// first generation-enabled typesystem marker.
type Registry struct {
	Entries []*TypeEntry

	byName map[string]*TypeEntry
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*TypeEntry)}
}

// Add registers an entry. The first entry wins on a name collision.
func (r *Registry) Add(e *TypeEntry) {
	r.Entries = append(r.Entries, e)
	if _, ok := r.byName[e.Name]; !ok {
		r.byName[e.Name] = e
	}
}

// Find returns the entry registered under name, or nil.
func (r *Registry) Find(name string) *TypeEntry {
	return r.byName[name]
}

// API is the model handed over by the parsing front end: the ordered entity
// lists plus the type registry. All of it is read-only to the generator.
type API struct {
	Registry *Registry

	Classes         []*AbstractMetaClass
	GlobalFunctions []*AbstractMetaFunction
	GlobalEnums     []*AbstractMetaEnum

	Primitives []*TypeEntry
	Containers []*TypeEntry
}

// FindClass returns the class whose type entry is entry, or nil.
func (a *API) FindClass(entry *TypeEntry) *AbstractMetaClass {
	for _, cls := range a.Classes {
		if cls.Entry == entry {
			return cls
		}
	}
	return nil
}

// FindEnum returns the enum model of an enum or flags entry, or nil. A flags
// entry resolves through its origin enum entry.
func (a *API) FindEnum(entry *TypeEntry) *AbstractMetaEnum {
	if entry == nil {
		return nil
	}
	if entry.IsFlags() {
		entry = entry.Origin
	}
	for _, en := range a.GlobalEnums {
		if en.Entry == entry {
			return en
		}
	}
	return nil
}

// FindEnumForType resolves an enum model from a use-site occurrence.
func (a *API) FindEnumForType(t *AbstractMetaType) *AbstractMetaEnum {
	if t == nil {
		return nil
	}
	return a.FindEnum(t.Entry)
}
