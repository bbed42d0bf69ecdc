// Package rules is speclint's catalog of built-in OpenAPI rules.
//
// Each rule is a validation.Validator over one concrete node type of the
// openapi package, erased so the whole catalog can be handed to the walker
// as a single slice.
package rules

import (
	"slices"
	"strings"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

// Doc is the document type every built-in rule validates.
type Doc = *openapi.Document

// Rule is a catalog entry.
type Rule struct {
	// Name identifies the rule in config files and on the command line.
	Name string `json:"name"`
	// Description says what the rule enforces.
	Description string `json:"description"`
	// Subject names the node type the rule applies to.
	Subject string `json:"subject"`
	// Attempt runs the rule.
	Attempt validation.Attempt[Doc] `json:"-"`
}

func newRule[T any](description string, v validation.Validator[Doc, T]) Rule {
	a := validation.Erase(v)
	return Rule{
		Name:        v.Name,
		Description: description,
		Subject:     a.Subject().String(),
		Attempt:     a,
	}
}

// Catalog returns every built-in rule in run order.
func Catalog() []Rule {
	return []Rule{
		newRule("The openapi field must name a 3.x version.", openAPIVersion()),
		newRule("The info object must have a title.", infoTitle()),
		newRule("The info object must have a version.", infoVersion()),
		newRule("A contact email, when given, must be a valid address.", contactEmail()),
		newRule("A license must have a name.", licenseName()),
		newRule("Server URLs must be absolute or start with a slash.", serverURL()),
		newRule("Path templates must start with a slash.", pathLeadingSlash()),
		newRule("Every path template parameter must be declared by each operation, and vice versa.", pathParamsDeclared()),
		newRule("Path parameters must be marked required.", pathParamRequired()),
		newRule("Parameters must have a name and a valid location.", parameterLocation()),
		newRule("Operation IDs must be unique across the document.", operationIDUnique()),
		newRule("Operations must declare at least one response.", operationResponses()),
		newRule("Operation tags must be declared at the top level when top-level tags exist.", operationTagsDefined()),
		newRule("Responses must have a description.", responseDescription()),
		newRule("Local schema references must resolve to a component schema.", schemaRefResolves()),
		newRule("Required properties of an object schema must be defined.", schemaRequiredProperties()),
		newRule("Top-level tag names must be unique.", tagsUnique()),
	}
}

// Names returns the names of every built-in rule in run order.
func Names() []string {
	catalog := Catalog()
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.Name
	}
	return names
}

// Lookup finds a rule by name.
func Lookup(name string) (Rule, bool) {
	for _, r := range Catalog() {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Select returns the catalog without the disabled rules. Unknown names wrap
// ErrUnknownRule.
func Select(disabled []string) ([]Rule, error) {
	catalog := Catalog()

	var unknown []string
	for _, name := range disabled {
		if !slices.ContainsFunc(catalog, func(r Rule) bool { return r.Name == name }) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, errors.Wrapf(errors.ErrUnknownRule, "%s", strings.Join(unknown, ", "))
	}

	return slices.DeleteFunc(catalog, func(r Rule) bool {
		return slices.Contains(disabled, r.Name)
	}), nil
}

// Attempts extracts the runnable attempts from rules, preserving order.
func Attempts(rules []Rule) []validation.Attempt[Doc] {
	out := make([]validation.Attempt[Doc], len(rules))
	for i, r := range rules {
		out[i] = r.Attempt
	}
	return out
}
