// Package walk discovers the nodes of an OpenAPI document and runs rule
// attempts against each of them.
package walk

import (
	"maps"
	"slices"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

// Node is a value found in the document together with its location.
type Node struct {
	Value any
	Path  validation.Path
}

// Nodes lists every node of doc in a deterministic order: depth first,
// fields in declaration order, map entries by sorted key. Each node is
// reported with the static type it has in the model (Info, *Contact,
// PathItem, *Operation, *Schema, ...). Nil pointers are skipped.
func Nodes(doc *openapi.Document) []Node {
	if doc == nil {
		return nil
	}
	c := &collector{}
	c.document(doc)
	return c.nodes
}

type collector struct {
	nodes []Node
}

func (c *collector) add(v any, p validation.Path) {
	c.nodes = append(c.nodes, Node{Value: v, Path: p})
}

func (c *collector) document(doc *openapi.Document) {
	root := validation.Path{}
	c.add(doc, root)

	c.info(doc.Info, root.Key("info"))

	for i, s := range doc.Servers {
		c.add(s, root.Key("servers").Index(i))
	}

	for _, k := range sortedKeys(doc.Paths) {
		c.pathItem(doc.Paths[k], root.Key("paths").Key(k))
	}

	if doc.Components != nil {
		c.components(doc.Components, root.Key("components"))
	}

	for i, t := range doc.Tags {
		p := root.Key("tags").Index(i)
		c.add(t, p)
		if t.ExternalDocs != nil {
			c.add(t.ExternalDocs, p.Key("externalDocs"))
		}
	}

	if doc.ExternalDocs != nil {
		c.add(doc.ExternalDocs, root.Key("externalDocs"))
	}
}

func (c *collector) info(info openapi.Info, p validation.Path) {
	c.add(info, p)
	if info.Contact != nil {
		c.add(info.Contact, p.Key("contact"))
	}
	if info.License != nil {
		c.add(info.License, p.Key("license"))
	}
}

func (c *collector) pathItem(item openapi.PathItem, p validation.Path) {
	c.add(item, p)
	c.parameters(item.Parameters, p.Key("parameters"))
	for _, mo := range item.Operations() {
		c.operation(mo.Operation, p.Key(mo.Method))
	}
}

func (c *collector) operation(op *openapi.Operation, p validation.Path) {
	c.add(op, p)
	c.parameters(op.Parameters, p.Key("parameters"))
	if op.RequestBody != nil {
		c.requestBody(op.RequestBody, p.Key("requestBody"))
	}
	c.responses(op.Responses, p.Key("responses"))
}

func (c *collector) parameters(params []openapi.Parameter, p validation.Path) {
	for i, param := range params {
		pp := p.Index(i)
		c.add(param, pp)
		c.schema(param.Schema, pp.Key("schema"))
	}
}

func (c *collector) requestBody(body *openapi.RequestBody, p validation.Path) {
	c.add(body, p)
	c.content(body.Content, p.Key("content"))
}

func (c *collector) responses(responses map[string]openapi.Response, p validation.Path) {
	for _, code := range sortedKeys(responses) {
		rp := p.Key(code)
		c.add(responses[code], rp)
		c.content(responses[code].Content, rp.Key("content"))
	}
}

func (c *collector) content(content map[string]openapi.MediaType, p validation.Path) {
	for _, mt := range sortedKeys(content) {
		mp := p.Key(mt)
		c.add(content[mt], mp)
		c.schema(content[mt].Schema, mp.Key("schema"))
	}
}

func (c *collector) schema(s *openapi.Schema, p validation.Path) {
	if s == nil {
		return
	}
	c.add(s, p)
	for _, name := range sortedKeys(s.Properties) {
		c.schema(s.Properties[name], p.Key("properties").Key(name))
	}
	c.schema(s.Items, p.Key("items"))
	for i, sub := range s.AllOf {
		c.schema(sub, p.Key("allOf").Index(i))
	}
	for i, sub := range s.OneOf {
		c.schema(sub, p.Key("oneOf").Index(i))
	}
	for i, sub := range s.AnyOf {
		c.schema(sub, p.Key("anyOf").Index(i))
	}
}

func (c *collector) components(comp *openapi.Components, p validation.Path) {
	c.add(comp, p)
	for _, name := range sortedKeys(comp.Schemas) {
		c.schema(comp.Schemas[name], p.Key("schemas").Key(name))
	}
	for _, name := range sortedKeys(comp.Parameters) {
		pp := p.Key("parameters").Key(name)
		c.add(comp.Parameters[name], pp)
		c.schema(comp.Parameters[name].Schema, pp.Key("schema"))
	}
	c.responses(comp.Responses, p.Key("responses"))
	for _, name := range sortedKeys(comp.RequestBodies) {
		body := comp.RequestBodies[name]
		c.requestBody(&body, p.Key("requestBodies").Key(name))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
