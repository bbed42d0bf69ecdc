package validation

import (
	"reflect"
)

// Attempt is a Validator with its subject type erased, so that rules over
// different node types can be stored together and run against any node.
type Attempt[D any] interface {
	// Name returns the underlying validator's name.
	Name() string
	// Subject returns the type of node the attempt applies to.
	Subject() reflect.Type
	// Run checks node when its dynamic type is exactly the subject type and
	// returns Valid for every other node.
	Run(doc D, node any, path Path) Validity
}

type attempt[D, T any] struct {
	validator Validator[D, T]
	subject   reflect.Type
}

// Erase wraps v as an Attempt. It panics if v has no Check or if T is an
// interface type, since no node ever has an interface as its dynamic type.
func Erase[D, T any](v Validator[D, T]) Attempt[D] {
	if v.Check == nil {
		panic("validation: validator " + v.Name + " has no check function")
	}
	subject := reflect.TypeFor[T]()
	if subject.Kind() == reflect.Interface {
		panic("validation: validator " + v.Name + " has interface subject " + subject.String() + "; use a concrete type")
	}
	return &attempt[D, T]{
		validator: v,
		subject:   subject,
	}
}

func (a *attempt[D, T]) Name() string { return a.validator.Name }

func (a *attempt[D, T]) Subject() reflect.Type { return a.subject }

func (a *attempt[D, T]) Run(doc D, node any, path Path) Validity {
	if reflect.TypeOf(node) != a.subject {
		return Valid()
	}
	subject, ok := node.(T)
	if !ok {
		return Valid()
	}
	return a.validator.Validate(Context[D, T]{
		Document: doc,
		Subject:  subject,
		Path:     path,
	})
}

// EraseAll is a convenience for registering several validators of the same
// subject type.
func EraseAll[D, T any](vs ...Validator[D, T]) []Attempt[D] {
	out := make([]Attempt[D], len(vs))
	for i, v := range vs {
		out[i] = Erase(v)
	}
	return out
}
