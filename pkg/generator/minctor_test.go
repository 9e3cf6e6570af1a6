package generator_test

import (
	"testing"

	"bindgen/pkg/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalEntryConstructor(t *testing.T) {
	g := newTestGenerator(newAPI(nil))

	tests := []struct {
		name   string
		entry  *meta.TypeEntry
		want   string
		wantOK bool
	}{
		{
			name:   "host primitive is a typed zero",
			entry:  hostPrimitive("int"),
			want:   "((int)0)",
			wantOK: true,
		},
		{
			name:   "enum is a qualified typed zero",
			entry:  enumEntry("Qt::Color"),
			want:   "((::Qt::Color)0)",
			wantOK: true,
		},
		{
			name: "flags is a qualified typed zero",
			entry: &meta.TypeEntry{
				Name: "Qt::Colors", Kind: meta.KindFlags, Origin: enumEntry("Qt::Color"),
			},
			want:   "((::Qt::Colors)0)",
			wantOK: true,
		},
		{
			name:   "user primitive with configured constructor",
			entry:  userPrimitive("MyInt", "MyInt::make()"),
			want:   "MyInt::make()",
			wantOK: true,
		},
		{
			name:   "user primitive without configured constructor is the heuristic empty call",
			entry:  userPrimitive("MyInt", ""),
			want:   "::MyInt()",
			wantOK: true,
		},
		{
			name:   "typesystem marker has no default",
			entry:  typesystemEntry("org.sample"),
			wantOK: false,
		},
		{
			name:   "nil entry has no default",
			entry:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.MinimalEntryConstructor(tt.entry)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinimalConstructorForOccurrence(t *testing.T) {
	intEntry := hostPrimitive("int")
	list := containerEntry("List")

	obj := objectClass("Obj", "")
	g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry, list}, obj))

	tests := []struct {
		name   string
		typ    *meta.AbstractMetaType
		want   string
		wantOK bool
	}{
		{
			name:   "nil type",
			typ:    nil,
			wantOK: false,
		},
		{
			name:   "reference to an object type",
			typ:    &meta.AbstractMetaType{Entry: obj.Entry, Reference: true},
			wantOK: false,
		},
		{
			name: "container value",
			typ: &meta.AbstractMetaType{
				Entry:          list,
				Constant:       true,
				Reference:      true,
				Instantiations: []*meta.AbstractMetaType{typeOf(intEntry)},
			},
			want:   "::List<int >()",
			wantOK: true,
		},
		{
			name: "container pointer is the null literal",
			typ: &meta.AbstractMetaType{
				Entry:          list,
				Indirections:   1,
				Instantiations: []*meta.AbstractMetaType{typeOf(intEntry)},
			},
			want:   "0",
			wantOK: true,
		},
		{
			name:   "native pointer",
			typ:    &meta.AbstractMetaType{Entry: obj.Entry, NativePointer: true},
			want:   "((Obj*)0)",
			wantOK: true,
		},
		{
			name:   "plain pointer",
			typ:    &meta.AbstractMetaType{Entry: obj.Entry, Indirections: 1},
			want:   "((::Obj*)0)",
			wantOK: true,
		},
		{
			name: "complex occurrence with configured override",
			typ: typeOf(&meta.TypeEntry{
				Name: "Conf", Kind: meta.KindComplex, ComplexKind: meta.ValueType,
				DefaultConstructor: "Conf::fromEnv()",
			}),
			want:   "Conf::fromEnv()",
			wantOK: true,
		},
		{
			name:   "host primitive occurrence",
			typ:    typeOf(intEntry),
			want:   "((int)0)",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.MinimalConstructor(tt.typ)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinimalClassConstructorZeroArgWins(t *testing.T) {
	intEntry := hostPrimitive("int")
	cls := valueClass("C", "")
	addCtor(cls)
	addCtor(cls, arg("x", typeOf(intEntry)))
	copyCtor := addCtor(cls, arg("other", &meta.AbstractMetaType{Entry: cls.Entry, Constant: true, Reference: true}))
	copyCtor.CopyConstructor = true

	g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry}, cls))

	got, ok := g.MinimalClassConstructor(cls)
	require.True(t, ok)
	assert.Equal(t, "::C()", got)
}

func TestMinimalClassConstructorCheapArguments(t *testing.T) {
	intEntry := hostPrimitive("int")
	colorEntry := enumEntry("EnumType")
	cls := valueClass("C", "")
	addCtor(cls, arg("x", typeOf(intEntry)), arg("e", typeOf(colorEntry)))

	g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry, colorEntry}, cls))

	got, ok := g.MinimalClassConstructor(cls)
	require.True(t, ok)
	assert.Equal(t, "::C(((int)0), ((::EnumType)0))", got)
}

func TestMinimalClassConstructorSelfReferential(t *testing.T) {
	intEntry := hostPrimitive("int")

	t.Run("only a self-typed constructor yields nothing", func(t *testing.T) {
		cls := valueClass("C", "")
		addCtor(cls, arg("other", typeOf(cls.Entry)))

		g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry}, cls))

		_, ok := g.MinimalClassConstructor(cls)
		assert.False(t, ok)
	})

	t.Run("self-typed candidate is never selected", func(t *testing.T) {
		cls := valueClass("C", "")
		addCtor(cls, arg("other", typeOf(cls.Entry)))
		addCtor(cls, arg("x", typeOf(intEntry)))

		g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry}, cls))

		got, ok := g.MinimalClassConstructor(cls)
		require.True(t, ok)
		assert.Equal(t, "::C(((int)0))", got)
	})
}

func TestMinimalClassConstructorExplicitDefault(t *testing.T) {
	cls := valueClass("C", "")
	cls.Entry.DefaultConstructor = "C::make()"
	cls.Entry.HasDefaultConstructor = true

	g := newTestGenerator(newAPI(nil, cls))

	got, ok := g.MinimalClassConstructor(cls)
	require.True(t, ok)
	assert.Equal(t, "C::make()", got)
}

func TestMinimalClassConstructorNoConstructors(t *testing.T) {
	// no eligible constructors at all behaves like an implicit default
	cls := valueClass("C", "")

	g := newTestGenerator(newAPI(nil, cls))

	got, ok := g.MinimalClassConstructor(cls)
	require.True(t, ok)
	assert.Equal(t, "::C()", got)
}

func TestMinimalClassConstructorDefaultValueShortCircuit(t *testing.T) {
	intEntry := hostPrimitive("int")

	t.Run("overridden default value is used and scanning stops", func(t *testing.T) {
		cls := valueClass("C", "")
		a := arg("x", typeOf(intEntry))
		a.OriginalDefaultValue = "1"
		a.DefaultValue = "42"
		addCtor(cls, a)

		g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry}, cls))

		got, ok := g.MinimalClassConstructor(cls)
		require.True(t, ok)
		assert.Equal(t, "::C(42)", got)
	})

	t.Run("unchanged default value leaves the trailing parameter out", func(t *testing.T) {
		cls := valueClass("C", "")
		b := arg("b", typeOf(intEntry))
		b.OriginalDefaultValue = "5"
		b.DefaultValue = "5"
		addCtor(cls, arg("a", typeOf(intEntry)), b)

		g := newTestGenerator(newAPI([]*meta.TypeEntry{intEntry}, cls))

		got, ok := g.MinimalClassConstructor(cls)
		require.True(t, ok)
		assert.Equal(t, "::C(((int)0))", got)
	})
}

func TestMinimalClassConstructorSecondPass(t *testing.T) {
	// D's only constructor takes a value type, which pass A refuses and
	// pass B builds recursively
	val := valueClass("Value", "")
	cls := valueClass("D", "")
	addCtor(cls, arg("v", typeOf(val.Entry)))

	g := newTestGenerator(newAPI(nil, val, cls))

	got, ok := g.MinimalClassConstructor(cls)
	require.True(t, ok)
	assert.Equal(t, "::D(::Value())", got)
}
