package rustgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/rustgen/errors"
)

func TestFnMissingBodyOutsideTrait(t *testing.T) {
	scope := NewScope()
	scope.PushFn(NewTraitFn("orphan"))

	_, err := scope.RenderString()
	require.Error(t, err)
	assert.True(t, errors.IsMissingBody(err))
}

func TestTraitFnRejectsVisibility(t *testing.T) {
	scope := NewScope()
	trt := scope.NewTrait("Foo")
	trt.NewFn("broken").SetVis(VisPub).Line("unreachable!()")

	_, err := scope.RenderString()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidVisibility(err))
}

func TestTraitFnDeclaration(t *testing.T) {
	scope := NewScope()
	trt := scope.NewTrait("Greeter")
	trt.NewFn("greet").ArgRefSelf().Ret(T("String"))

	want := `trait Greeter {
    fn greet(&self) -> String;
}
`
	assert.Equal(t, want, renderScope(t, scope))
}

func TestFnSelfForms(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*Function) *Function
		want string
	}{
		{
			name: "by value",
			cfg:  (*Function).ArgSelf,
			want: "fn consume(self, x: u32) {\n}\n",
		},
		{
			name: "by reference",
			cfg:  (*Function).ArgRefSelf,
			want: "fn consume(&self, x: u32) {\n}\n",
		},
		{
			name: "by mutable reference",
			cfg:  (*Function).ArgMutSelf,
			want: "fn consume(&mut self, x: u32) {\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.cfg(NewFn("consume")).Arg("x", T("u32"))

			w := NewWriter()
			require.NoError(t, f.render(w, false))
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestFnExternAndAsync(t *testing.T) {
	f := NewFn("handler").
		SetVis(VisPub).
		ExternABI("C").
		SetAsync(true).
		Arg("code", T("i32")).
		Line("process(code).await;")

	w := NewWriter()
	require.NoError(t, f.render(w, false))

	want := `pub extern "C" async fn handler(code: i32) {
    process(code).await;
}
`
	assert.Equal(t, want, w.String())
}

func TestFnGenericsAndBounds(t *testing.T) {
	f := NewFn("largest").
		PushLifetime("'a").
		PushGeneric(T("T")).
		Arg("items", T("&'a [T]")).
		Ret(T("&'a T")).
		PushBound(NewBound("T", T("PartialOrd"))).
		Line("items.iter().max().unwrap()")

	w := NewWriter()
	require.NoError(t, f.render(w, false))

	want := `fn largest<'a, T>(items: &'a [T]) -> &'a T
where
T: PartialOrd,
{
    items.iter().max().unwrap()
}
`
	assert.Equal(t, want, w.String())
}

func TestFnAllowAndDocs(t *testing.T) {
	f := NewFn("noisy").
		PushDoc("Does nothing, loudly.").
		Allow("unused_variables").
		Line("let x = 1;")

	w := NewWriter()
	require.NoError(t, f.render(w, false))

	want := `/// Does nothing, loudly.
#[allow(unused_variables)]
fn noisy() {
    let x = 1;
}
`
	assert.Equal(t, want, w.String())
}

func TestFnNestedBlockBody(t *testing.T) {
	inner := NewBlock("match result").
		Line("Ok(v) => v,").
		Line("Err(e) => return Err(e),").
		After(";")

	f := NewFn("unwrap_or_bail").
		Line("let result = compute();").
		PushBlock(inner).
		Line("Ok(())")

	w := NewWriter()
	require.NoError(t, f.render(w, false))

	want := `fn unwrap_or_bail() {
    let result = compute();
    match result {
        Ok(v) => v,
        Err(e) => return Err(e),
    };
    Ok(())
}
`
	assert.Equal(t, want, w.String())
}

func TestBlockRenderStandalone(t *testing.T) {
	b := NewBlock("loop").
		Line("tick();").
		PushBlock(NewBlock("if done").Line("break;"))

	w := NewWriter()
	require.NoError(t, b.render(w))

	want := `loop {
    tick();
    if done {
        break;
    }
}
`
	assert.Equal(t, want, w.String())
}
