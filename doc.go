// Package rustgen provides a builder API for generating Rust source code.
//
// The general strategy is:
//
//  1. Create a Scope.
//  2. Use the builder API to add items to the scope.
//  3. Call Scope.RenderString to get the generated code.
//
// For example:
//
//	scope := rustgen.NewScope()
//
//	scope.NewStruct("Foo").
//		Derive("Debug").
//		Field("one", rustgen.T("usize")).
//		Field("two", rustgen.T("String"))
//
//	src, err := scope.RenderString()
//
// The engine guarantees that its own formatting rules are applied
// consistently: indentation composes under arbitrary nesting and every item
// emits its sections in a fixed, language-legal order. It does not parse,
// type-check, or verify that the emitted text compiles. Output is
// syntactically complete but not canonically pretty; pipe it through rustfmt
// if you want canonical whitespace.
//
// Construction errors (mixing tuple and named fields, rendering a bodyless
// function outside a trait, visibility on a trait function) are contract
// violations surfaced as sentinel errors from the errors package.
//
// The builder is single-threaded: neither a Scope nor a Writer may be shared
// across concurrent callers without external locking.
package rustgen
