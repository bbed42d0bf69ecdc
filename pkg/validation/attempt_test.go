package validation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	name string
}

type nodeA struct{ value string }

type nodeB struct{ value int }

type namedString string

type stringer interface{ String() string }

func (a nodeA) String() string { return a.value }

func failingCheck(calls *int) Check[*testDoc, nodeA] {
	return func(c Context[*testDoc, nodeA]) Validity {
		*calls++
		return c.Invalid("bad A")
	}
}

func TestAttempt_RunsOnExactType(t *testing.T) {
	var calls int
	a := Erase(New("a-rule", failingCheck(&calls)))

	got := a.Run(&testDoc{}, nodeA{value: "x"}, NewPath("a"))

	assert.Equal(t, 1, calls)
	assert.True(t, got.Equal(Invalid("bad A", NewPath("a"))))
	assert.Equal(t, "a-rule", a.Name())
}

func TestAttempt_SkipsOtherTypes(t *testing.T) {
	var calls int
	a := Erase(New("a-rule", failingCheck(&calls)))
	v := nodeA{value: "x"}

	nodes := map[string]any{
		"different type":  nodeB{value: 1},
		"pointer to type": &v,
		"nil":             nil,
		"typed nil ptr":   (*nodeA)(nil),
		"slice of type":   []nodeA{v},
		"string":          "x",
	}
	for name, node := range nodes {
		t.Run(name, func(t *testing.T) {
			assert.True(t, a.Run(&testDoc{}, node, nil).IsValid())
		})
	}
	assert.Zero(t, calls, "check must not run for mismatched nodes")
}

func TestAttempt_PointerRuleSkipsValue(t *testing.T) {
	var calls int
	a := Erase(New("ptr-rule", func(c Context[*testDoc, *nodeA]) Validity {
		calls++
		return c.Invalid("bad")
	}))

	assert.True(t, a.Run(&testDoc{}, nodeA{}, nil).IsValid())
	assert.Zero(t, calls)

	assert.False(t, a.Run(&testDoc{}, &nodeA{}, nil).IsValid())
	assert.Equal(t, 1, calls)
}

func TestErase_InterfaceSubjectPanics(t *testing.T) {
	v := New("iface-rule", func(c Context[*testDoc, stringer]) Validity {
		return c.Invalid("bad")
	})

	assert.PanicsWithValue(t,
		"validation: validator iface-rule has interface subject validation.stringer; use a concrete type",
		func() { Erase(v) })
	assert.Panics(t, func() { EraseAll(v) })

	// The validator itself is still usable directly.
	got := v.Validate(Context[*testDoc, stringer]{Subject: nodeA{value: "x"}})
	assert.False(t, got.IsValid())
}

func TestAttempt_NamedTypeIsDistinct(t *testing.T) {
	var calls int
	a := Erase(New("string-rule", func(c Context[*testDoc, string]) Validity {
		calls++
		return c.Invalid("bad")
	}))

	assert.True(t, a.Run(&testDoc{}, namedString("x"), nil).IsValid())
	assert.Zero(t, calls)
	assert.False(t, a.Run(&testDoc{}, "x", nil).IsValid())
}

func TestAttempt_PredicateGates(t *testing.T) {
	var calls int
	a := Erase(New("gated", failingCheck(&calls),
		WithPredicate(func(Context[*testDoc, nodeA]) bool { return false })))

	for i := range 5 {
		assert.True(t, a.Run(&testDoc{}, nodeA{value: fmt.Sprint(i)}, nil).IsValid())
	}
	assert.Zero(t, calls)
}

func TestAttempt_PredicateSeesContext(t *testing.T) {
	doc := &testDoc{name: "strict"}
	a := Erase(New("ctx", func(c Context[*testDoc, nodeA]) Validity {
		return c.InvalidAt("empty", Key("value"))
	}, WithPredicate(func(c Context[*testDoc, nodeA]) bool {
		return c.Document.name == "strict" && c.Subject.value == "" && len(c.Path) == 1
	})))

	got := a.Run(doc, nodeA{}, NewPath("a"))
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "/a/value", got.Errors()[0].Path.String())

	assert.True(t, a.Run(&testDoc{name: "lax"}, nodeA{}, NewPath("a")).IsValid())
}

func TestAttempt_PassingCheckIsValid(t *testing.T) {
	a := Erase(New("ok", func(Context[*testDoc, nodeB]) Validity { return Valid() }))
	assert.True(t, a.Run(&testDoc{}, nodeB{}, nil).IsValid())
}

func TestAttempt_Idempotent(t *testing.T) {
	a := Erase(New("a", func(c Context[*testDoc, nodeA]) Validity {
		return c.Invalidf("bad %s", c.Subject.value)
	}))
	doc := &testDoc{}
	path := NewPath("x", 1)

	first := a.Run(doc, nodeA{value: "v"}, path)
	for range 10 {
		assert.True(t, first.Equal(a.Run(doc, nodeA{value: "v"}, path)))
	}
}

func TestAttempt_ConcurrentRuns(t *testing.T) {
	a := Erase(New("a", func(c Context[*testDoc, nodeA]) Validity {
		return c.Invalid(c.Subject.value)
	}))
	doc := &testDoc{}

	results := make([]Validity, 64)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = a.Run(doc, nodeA{value: fmt.Sprint(i)}, NewPath(i))
		}()
	}
	wg.Wait()

	merged := MergeAll(results...)
	require.Equal(t, len(results), merged.Len())
	for i, e := range merged.Errors() {
		assert.Equal(t, fmt.Sprint(i), e.Reason)
	}
}

func TestEndToEnd_MixedNodeTypes(t *testing.T) {
	attempts := []Attempt[*testDoc]{
		Erase(New("a", func(c Context[*testDoc, nodeA]) Validity {
			return c.Invalid("bad A")
		})),
		Erase(New("b", func(Context[*testDoc, nodeB]) Validity {
			return Valid()
		})),
	}
	doc := &testDoc{}
	nodes := []struct {
		value any
		path  Path
	}{
		{nodeA{}, NewPath("a")},
		{nodeB{}, NewPath("b")},
	}

	var result Validity
	for _, n := range nodes {
		for _, a := range attempts {
			result = Merge(result, a.Run(doc, n.value, n.path))
		}
	}

	assert.True(t, result.Equal(Invalid("bad A", NewPath("a"))))
}

func TestNew_PanicsWithoutCheck(t *testing.T) {
	assert.Panics(t, func() { New[*testDoc, nodeA]("broken", nil) })
	assert.Panics(t, func() { Erase(Validator[*testDoc, nodeA]{Name: "broken"}) })
}

func TestEraseAll(t *testing.T) {
	as := EraseAll(
		New("one", func(c Context[*testDoc, nodeA]) Validity { return c.Invalid("1") }),
		New("two", func(c Context[*testDoc, nodeA]) Validity { return c.Invalid("2") }),
	)
	require.Len(t, as, 2)
	assert.Equal(t, "one", as[0].Name())
	assert.Equal(t, "two", as[1].Name())
	assert.Equal(t, "nodeA", as[1].Subject().Name())
}
