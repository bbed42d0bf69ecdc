package openapi

import "strings"

// SchemaRefPrefix prefixes local references to component schemas.
const SchemaRefPrefix = "#/components/schemas/"

// ResolveSchema looks up a local schema reference such as
// "#/components/schemas/Pet". External and malformed references are not
// resolved.
func (d *Document) ResolveSchema(ref string) (*Schema, bool) {
	name, ok := strings.CutPrefix(ref, SchemaRefPrefix)
	if !ok || name == "" || d.Components == nil {
		return nil, false
	}
	s, ok := d.Components.Schemas[name]
	return s, ok && s != nil
}

// IsLocalRef reports whether ref points into the same document.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// OperationIDCount counts the operations using id across all paths.
func (d *Document) OperationIDCount(id string) int {
	n := 0
	for _, item := range d.Paths {
		for _, mo := range item.Operations() {
			if mo.Operation.OperationID == id {
				n++
			}
		}
	}
	return n
}

// HasTag reports whether the document declares a top-level tag named name.
func (d *Document) HasTag(name string) bool {
	for _, t := range d.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}
