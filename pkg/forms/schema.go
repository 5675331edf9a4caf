// Package forms converts a template's remote-declared variable schema into
// the flat, namespaced, typed field list a host renders, and carries the
// static declarative field sets for each operation.
package forms

// FieldType enumerates the input kinds a host can render.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeFile     FieldType = "file"
	FieldTypeCopy     FieldType = "copy"
)

// knownTypes is the closed set of renderable field types.
var knownTypes = map[FieldType]struct{}{
	FieldTypeString:   {},
	FieldTypeText:     {},
	FieldTypeNumber:   {},
	FieldTypeInteger:  {},
	FieldTypeBoolean:  {},
	FieldTypeDatetime: {},
	FieldTypeFile:     {},
	FieldTypeCopy:     {},
}

// NormalizeType maps a remote-declared type onto the renderable set. An
// unrecognized type is not an error; it degrades to string so one odd field
// never blocks a whole form.
func NormalizeType(t FieldType) FieldType {
	if _, ok := knownTypes[t]; ok {
		return t
	}
	return FieldTypeString
}

// FieldSchema is one remote-declared template variable as served by
// GET /v1/templates/{id}/zapier-fields.
//
// Children is present only for list fields whose items are records
// (line-item tables). A field with Children is always List; children never
// carry Children themselves — nesting is one level deep.
type FieldSchema struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Type     FieldType     `json:"type"`
	Required bool          `json:"required"`
	HelpText string        `json:"helpText,omitempty"`
	Default  any           `json:"default,omitempty"`
	List     bool          `json:"list,omitempty"`
	Children []FieldSchema `json:"children,omitempty"`
}
