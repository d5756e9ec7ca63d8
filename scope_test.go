package rustgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderScope(t *testing.T, s *Scope) string {
	t.Helper()
	out, err := s.RenderString()
	require.NoError(t, err)
	return out
}

func TestEmptyScope(t *testing.T) {
	scope := NewScope()
	assert.Equal(t, "", renderScope(t, scope))
}

func TestSingleStruct(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		Field("one", T("usize")).
		Field("two", T("String"))

	want := `struct Foo {
    one: usize,
    two: String,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithPushedField(t *testing.T) {
	scope := NewScope()

	st := NewStruct("Foo")
	st.PushField(NewField("one", T("usize")))
	scope.PushStruct(st)

	want := `struct Foo {
    one: usize,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructDocumentedFields(t *testing.T) {
	scope := NewScope()
	doc := []string{"Field's documentation", "Second line"}

	st := NewStruct("Foo")
	st.AddField("one", T("usize")).PushDocs(doc)
	st.AddField("two", T("usize")).PushAttr(`#[serde(rename = "bar")]`)
	st.AddField("three", T("usize")).PushDocs(doc).ExtendAttrs([]string{
		`#[serde(skip_serializing)]`,
		`#[serde(skip_deserializing)]`,
	})
	scope.PushStruct(st)

	want := `struct Foo {
    /// Field's documentation
    /// Second line
    one: usize,
    #[serde(rename = "bar")]
    two: usize,
    /// Field's documentation
    /// Second line
    #[serde(skip_serializing)]
    #[serde(skip_deserializing)]
    three: usize,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestSingleFn(t *testing.T) {
	scope := NewScope()

	scope.NewFn("my_fn").
		SetVis(VisPub).
		Arg("foo", T("uint")).
		Ret(T("uint")).
		Line("let res = foo + 1;").
		Line("res")

	want := `pub fn my_fn(foo: uint) -> uint {
    let res = foo + 1;
    res
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestDocumentedEnum(t *testing.T) {
	scope := NewScope()

	e := scope.NewEnum("AnEnum").
		SetDoc("An enum that has enum-level docs").
		SetVis(VisPubCrate).
		PushAttr(`#[serde(rename_all = "camelCase")]`).
		PushGeneric(T("T")).
		PushBound(NewBound("T", T("Clone"))).
		Derive("Debug", "Clone", "PartialEq", "Eq", "serde::Deserialize")

	e.NewVariant("VariantA").
		PushDoc("Variant A docs").
		PushDoc("Some more docs").
		Named("inner", T("T")).
		PushAttr(`#[serde(rename = "aDifferentName")]`)

	e.NewVariant("VariantB").
		PushDoc("Variant B docs").
		PushAttr(`#[serde(skip_serializing)]`).
		Tuple(T("Option", T("T")))

	want := `/// An enum that has enum-level docs
#[derive(Debug, Clone, PartialEq, Eq, serde::Deserialize)]
#[serde(rename_all = "camelCase")]
pub(crate) enum AnEnum<T>
where
T: Clone,
{
    /// Variant A docs
    /// Some more docs
    #[serde(rename = "aDifferentName")]
    VariantA {
        inner: T,
    }
    ,
    /// Variant B docs
    #[serde(skip_serializing)]
    VariantB(Option<T>),
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestEmptyStruct(t *testing.T) {
	scope := NewScope()
	scope.NewStruct("Foo")

	assert.Equal(t, "struct Foo;\n", renderScope(t, scope))
}

func TestTupleStruct(t *testing.T) {
	scope := NewScope()
	scope.NewStruct("Pair").
		SetVis(VisPub).
		TupleField(T("usize")).
		TupleField(T("String"))

	assert.Equal(t, "pub struct Pair(usize, String);\n", renderScope(t, scope))
}

func TestTwoStructs(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		Field("one", T("usize")).
		Field("two", T("String"))

	scope.NewStruct("Bar").
		Field("hello", T("World"))

	want := `struct Foo {
    one: usize,
    two: String,
}

struct Bar {
    hello: World,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithDerive(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		Derive("Debug").
		Derive("Clone").
		Field("one", T("usize")).
		Field("two", T("String"))

	want := `#[derive(Debug, Clone)]
struct Foo {
    one: usize,
    two: String,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithRepr(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		Repr("C").
		Field("one", T("u8")).
		Field("two", T("u8"))

	want := `#[repr(C)]
struct Foo {
    one: u8,
    two: u8,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithAllow(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		Allow("dead_code").
		Field("one", T("u8")).
		Field("two", T("u8"))

	want := `#[allow(dead_code)]
struct Foo {
    one: u8,
    two: u8,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithMultipleAllow(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		Allow("dead_code").
		Allow("clippy::all").
		Field("one", T("u8")).
		Field("two", T("u8"))

	want := `#[allow(dead_code)]
#[allow(clippy::all)]
struct Foo {
    one: u8,
    two: u8,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithGenerics(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		ExtendGenerics([]*Type{T("T"), T("U")}).
		Field("one", T("T")).
		Field("two", T("U"))

	want := `struct Foo<T, U> {
    one: T,
    two: U,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWithInlineBoundGeneric(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		ExtendGenerics([]*Type{T("T: Win"), T("U")}).
		Field("one", T("T")).
		Field("two", T("U"))

	want := `struct Foo<T: Win, U> {
    one: T,
    two: U,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWhereClause(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		PushGeneric(T("T")).
		PushBound(NewBound("T", T("Foo"))).
		Field("one", T("T"))

	want := `struct Foo<T>
where
T: Foo,
{
    one: T,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructWhereClauseTwoBounds(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		ExtendGenerics([]*Type{T("T"), T("U")}).
		ExtendBounds([]*Bound{
			NewBound("T", T("Foo")),
			NewBound("U", T("Baz")),
		}).
		Field("one", T("T")).
		Field("two", T("U"))

	want := `struct Foo<T, U>
where
T: Foo,
U: Baz,
{
    one: T,
    two: U,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructDoc(t *testing.T) {
	scope := NewScope()

	scope.NewStruct("Foo").
		PushDoc("Hello, this is a doc string\nthat continues on another line.").
		Field("one", T("T"))

	want := `/// Hello, this is a doc string
/// that continues on another line.
struct Foo {
    one: T,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructInMod(t *testing.T) {
	scope := NewScope()

	scope.NewModule("foo").
		NewStruct("Foo").
		PushDoc("Hello some docs").
		Derive("Debug").
		ExtendGenerics([]*Type{T("T"), T("U")}).
		PushBound(NewBound("T", T("SomeBound"))).
		PushBound(NewBound("U", T("SomeOtherBound"))).
		Field("one", T("T")).
		Field("two", T("U"))

	want := `mod foo {
    /// Hello some docs
    #[derive(Debug)]
    struct Foo<T, U>
    where
    T: SomeBound,
    U: SomeOtherBound,
    {
        one: T,
        two: U,
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestStructModImport(t *testing.T) {
	scope := NewScope()

	scope.NewModule("foo").
		Import("bar", "Bar").
		NewStruct("Foo").
		Field("bar", T("Bar"))

	want := `mod foo {
    use bar::Bar;

    struct Foo {
        bar: Bar,
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestScopedImports(t *testing.T) {
	scope := NewScope()

	scope.NewModule("foo").
		Import("bar", "Bar").
		Import("bar", "baz::Baz").
		Import("bar::quux", "quuux::Quuuux").
		NewStruct("Foo").
		Field("bar", T("Bar")).
		Field("baz", T("baz::Baz")).
		Field("quuuux", T("quuux::Quuuux"))

	want := `mod foo {
    use bar::{Bar, baz};
    use bar::quux::quuux;

    struct Foo {
        bar: Bar,
        baz: baz::Baz,
        quuuux: quuux::Quuuux,
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestImportConsolidation(t *testing.T) {
	scope := NewScope()
	scope.Import("bar", "Bar")
	scope.Import("bar", "Baz")
	scope.Import("bar::quux", "Quuuux")

	// No items, so no blank line follows the import section.
	want := `use bar::{Bar, Baz};
use bar::quux::Quuuux;
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestImportDeduplication(t *testing.T) {
	scope := NewScope()
	first := scope.Import("std::fmt", "Display")
	second := scope.Import("std::fmt", "Display")
	assert.Same(t, first, second)

	assert.Equal(t, "use std::fmt::Display;\n", renderScope(t, scope))
}

func TestModuleLookup(t *testing.T) {
	scope := NewScope()
	scope.NewModule("foo").Import("bar", "Bar")

	m := scope.GetModule("foo")
	require.NotNil(t, m)
	m.NewStruct("Foo").Field("bar", T("Bar"))

	assert.Nil(t, scope.GetModule("missing"))

	want := `mod foo {
    use bar::Bar;

    struct Foo {
        bar: Bar,
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestGetOrNewModule(t *testing.T) {
	scope := NewScope()
	require.Nil(t, scope.GetModule("foo"))

	scope.GetOrNewModule("foo").Import("bar", "Bar")
	scope.GetOrNewModule("foo").
		NewStruct("Foo").
		Field("bar", T("Bar"))

	// Both calls must hit the same module.
	assert.Equal(t, 1, scope.ItemCount())

	want := `mod foo {
    use bar::Bar;

    struct Foo {
        bar: Bar,
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestDuplicateModulesFirstMatchWins(t *testing.T) {
	scope := NewScope()
	first := scope.NewModule("foo")
	scope.NewModule("foo")

	assert.Same(t, first, scope.GetModule("foo"))
	assert.Equal(t, 2, scope.ItemCount())
}

func TestTraitWithAsyncFn(t *testing.T) {
	scope := NewScope()
	trt := scope.NewTrait("Foo")

	trt.NewFn("pet_toby").
		SetAsync(true).
		Line(`println!("petting toby because he is a good boi");`)

	want := `trait Foo {
    async fn pet_toby() {
        println!("petting toby because he is a good boi");
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestTraitWithMacros(t *testing.T) {
	scope := NewScope()
	trt := scope.NewTrait("Foo").
		PushAttr("#[async_trait]").
		PushAttr("#[toby_is_cute]")

	trt.NewFn("pet_toby").
		SetAsync(true).
		Line(`println!("petting toby because he is a good boi");`)

	want := `#[async_trait]
#[toby_is_cute]
trait Foo {
    async fn pet_toby() {
        println!("petting toby because he is a good boi");
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestImplWithMacros(t *testing.T) {
	scope := NewScope()
	scope.NewStruct("Bar")

	imp := scope.NewImpl(T("Bar")).
		ImplTrait(T("Foo")).
		PushAttr("#[async_trait]").
		PushAttr("#[toby_is_cute]")

	imp.NewFn("pet_toby").
		SetAsync(true).
		Line(`println!("petting Toby many times because he is such a good boi");`)

	want := `struct Bar;

#[async_trait]
#[toby_is_cute]
impl Foo for Bar {
    async fn pet_toby() {
        println!("petting Toby many times because he is such a good boi");
    }
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestEnumWithRepr(t *testing.T) {
	scope := NewScope()

	scope.NewEnum("IpAddrKind").
		Repr("u8").
		PushVariant(NewVariant("V4")).
		PushVariant(NewVariant("V6"))

	want := `#[repr(u8)]
enum IpAddrKind {
    V4,
    V6,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestEnumWithMultipleAllow(t *testing.T) {
	scope := NewScope()

	scope.NewEnum("IpAddrKind").
		Allow("dead_code").
		Allow("clippy::all").
		PushVariant(NewVariant("V4")).
		PushVariant(NewVariant("V6"))

	want := `#[allow(dead_code)]
#[allow(clippy::all)]
enum IpAddrKind {
    V4,
    V6,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestRawPassthrough(t *testing.T) {
	scope := NewScope()
	scope.Raw("fn main() { println!(\"hi\"); }")
	scope.NewStruct("Foo")

	want := `fn main() { println!("hi"); }

struct Foo;
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestRenderIdempotent(t *testing.T) {
	scope := NewScope()
	scope.Import("std::fmt", "Display")
	scope.NewStruct("Foo").
		Derive("Debug").
		Field("one", T("usize"))
	scope.NewEnum("Bar").
		PushVariant(NewVariant("A")).
		PushVariant(NewVariant("B"))

	first := renderScope(t, scope)
	second := renderScope(t, scope)
	assert.Equal(t, first, second)
}

func TestFixedHeadSectionOrder(t *testing.T) {
	scope := NewScope()

	// Builder calls deliberately issued out of emission order.
	scope.NewStruct("Foo").
		PushAttr(`#[serde(deny_unknown_fields)]`).
		Repr("C").
		SetVis(VisPub).
		Derive("Debug").
		Allow("dead_code").
		PushDoc("A struct.").
		Field("one", T("u8"))

	want := `/// A struct.
#[allow(dead_code)]
#[derive(Debug)]
#[repr(C)]
#[serde(deny_unknown_fields)]
pub struct Foo {
    one: u8,
}
`
	assert.Equal(t, want, renderScope(t, scope))
}
