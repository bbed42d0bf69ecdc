package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

var parameterLocations = []string{openapi.InQuery, openapi.InHeader, openapi.InPath, openapi.InCookie}

// templateOf returns the path template a PathItem is stored under, taken
// from the last segment of its path.
func templateOf(p validation.Path) string {
	seg, ok := p.Last()
	if !ok {
		return ""
	}
	return seg.Name()
}

func pathLeadingSlash() validation.Validator[Doc, openapi.PathItem] {
	return validation.New("path-leading-slash", func(c validation.Context[Doc, openapi.PathItem]) validation.Validity {
		if tmpl := templateOf(c.Path); !strings.HasPrefix(tmpl, "/") {
			return c.Invalidf("path %q must start with /", tmpl)
		}
		return validation.Valid()
	})
}

func pathParamsDeclared() validation.Validator[Doc, openapi.PathItem] {
	return validation.New("path-params-declared", func(c validation.Context[Doc, openapi.PathItem]) validation.Validity {
		tmpl := templateOf(c.Path)
		var names []string
		for _, m := range templateVar.FindAllStringSubmatch(tmpl, -1) {
			names = append(names, m[1])
		}

		shared := pathParamNames(c.Subject.Parameters)

		var result validation.Validity
		for i, p := range c.Subject.Parameters {
			if p.In == openapi.InPath && !slices.Contains(names, p.Name) {
				result = validation.Merge(result, c.InvalidAt(
					fmt.Sprintf("path parameter %q does not appear in %q", p.Name, tmpl),
					validation.Key("parameters"), validation.Index(i)))
			}
		}

		for _, mo := range c.Subject.Operations() {
			declared := append(slices.Clone(shared), pathParamNames(mo.Operation.Parameters)...)
			for _, name := range names {
				if !slices.Contains(declared, name) {
					result = validation.Merge(result, c.InvalidAt(
						fmt.Sprintf("path parameter %q is not declared", name),
						validation.Key(mo.Method)))
				}
			}
			for i, p := range mo.Operation.Parameters {
				if p.In == openapi.InPath && !slices.Contains(names, p.Name) {
					result = validation.Merge(result, c.InvalidAt(
						fmt.Sprintf("path parameter %q does not appear in %q", p.Name, tmpl),
						validation.Key(mo.Method), validation.Key("parameters"), validation.Index(i)))
				}
			}
		}
		return result
	})
}

func pathParamNames(params []openapi.Parameter) []string {
	var names []string
	for _, p := range params {
		if p.In == openapi.InPath {
			names = append(names, p.Name)
		}
	}
	return names
}

func pathParamRequired() validation.Validator[Doc, openapi.Parameter] {
	return validation.New("path-param-required", func(c validation.Context[Doc, openapi.Parameter]) validation.Validity {
		if !c.Subject.Required {
			return c.InvalidAt(fmt.Sprintf("path parameter %q must be required", c.Subject.Name), validation.Key("required"))
		}
		return validation.Valid()
	}, validation.WithPredicate(func(c validation.Context[Doc, openapi.Parameter]) bool {
		return c.Subject.In == openapi.InPath
	}))
}

func parameterLocation() validation.Validator[Doc, openapi.Parameter] {
	return validation.New("parameter-location", func(c validation.Context[Doc, openapi.Parameter]) validation.Validity {
		var result validation.Validity
		if strings.TrimSpace(c.Subject.Name) == "" {
			result = c.InvalidAt("parameter name is required", validation.Key("name"))
		}
		if !slices.Contains(parameterLocations, c.Subject.In) {
			result = validation.Merge(result, c.InvalidAt(
				fmt.Sprintf("parameter location %q must be one of %s", c.Subject.In, strings.Join(parameterLocations, ", ")),
				validation.Key("in")))
		}
		return result
	}, validation.WithPredicate(func(c validation.Context[Doc, openapi.Parameter]) bool {
		return c.Subject.Ref == ""
	}))
}
