package forms

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/rynko-dev/zapier/pkg/variables"
)

// CompiledField is a FieldSchema projected into the host's flat namespace.
// The key is prefix + schema key; nested/repeating structure is carried by
// List/Children metadata rather than by the key itself — the double-delimiter
// path encoding is applied to values at submission time, in pkg/variables.
//
// A compiled field list is owned by one form-build call and immutable once
// returned.
type CompiledField struct {
	Key                 string            `json:"key"`
	Label               string            `json:"label"`
	Type                FieldType         `json:"type"`
	Required            bool              `json:"required"`
	HelpText            string            `json:"helpText,omitempty"`
	Default             any               `json:"default,omitempty"`
	List                bool              `json:"list,omitempty"`
	Children            []CompiledField   `json:"children,omitempty"`
	Dynamic             string            `json:"dynamic,omitempty"`
	Choices             map[string]string `json:"choices,omitempty"`
	AltersDynamicFields bool              `json:"altersDynamicFields,omitempty"`
}

// Compile maps each schema entry to one compiled field under prefix. It
// performs no network IO and never fails: unknown types degrade to string
// and a missing label is derived from the key.
//
// Children of a line-item table are reproduced without the namespace prefix;
// they are scoped under their parent at reconstruction time, not at
// key-generation time.
func Compile(fields []FieldSchema, prefix string) []CompiledField {
	if prefix == "" {
		prefix = variables.DefaultPrefix
	}

	compiled := make([]CompiledField, 0, len(fields))
	for _, field := range fields {
		cf := CompiledField{
			Key:      prefix + field.Key,
			Label:    labelOr(field.Label, field.Key),
			Type:     NormalizeType(field.Type),
			Required: field.Required,
			HelpText: field.HelpText,
			Default:  field.Default,
		}

		switch {
		case field.List && len(field.Children) > 0:
			cf.List = true
			cf.Children = make([]CompiledField, 0, len(field.Children))
			for _, child := range field.Children {
				cf.Children = append(cf.Children, CompiledField{
					Key:      child.Key,
					Label:    labelOr(child.Label, child.Key),
					Type:     NormalizeType(child.Type),
					Required: child.Required,
					HelpText: child.HelpText,
				})
			}
		case field.List:
			cf.List = true
		}

		compiled = append(compiled, cf)
	}
	return compiled
}

// labelOr returns the declared label, or one derived from the key
// ("invoiceNumber" -> "Invoice Number") when the remote omits it.
func labelOr(label, key string) string {
	if label != "" {
		return label
	}

	words := strings.Fields(strcase.ToDelimited(key, ' '))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
