package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Run("prefixes keys and maps types", func(t *testing.T) {
		fields := []FieldSchema{
			{Key: "amount", Label: "Amount", Type: FieldTypeNumber, Required: true},
		}

		compiled := Compile(fields, "var_")
		require.Len(t, compiled, 1)
		assert.Equal(t, "var_amount", compiled[0].Key)
		assert.Equal(t, FieldTypeNumber, compiled[0].Type)
		assert.True(t, compiled[0].Required)
	})

	t.Run("unknown type degrades to string", func(t *testing.T) {
		fields := []FieldSchema{{Key: "weird", Type: "hologram"}}

		compiled := Compile(fields, "var_")
		require.Len(t, compiled, 1)
		assert.Equal(t, FieldTypeString, compiled[0].Type)
	})

	t.Run("line item children are not prefixed", func(t *testing.T) {
		fields := []FieldSchema{{
			Key:  "items",
			Type: FieldTypeString,
			List: true,
			Children: []FieldSchema{
				{Key: "sku", Label: "SKU", Type: FieldTypeString, Required: true},
				{Key: "qty", Label: "Quantity", Type: "count"},
			},
		}}

		compiled := Compile(fields, "var_")
		require.Len(t, compiled, 1)
		assert.Equal(t, "var_items", compiled[0].Key)
		assert.True(t, compiled[0].List)
		require.Len(t, compiled[0].Children, 2)
		assert.Equal(t, "sku", compiled[0].Children[0].Key)
		assert.Equal(t, "qty", compiled[0].Children[1].Key)
		assert.Equal(t, FieldTypeString, compiled[0].Children[1].Type)
	})

	t.Run("simple repeating scalar has no children", func(t *testing.T) {
		fields := []FieldSchema{{Key: "tags", Type: FieldTypeString, List: true}}

		compiled := Compile(fields, "var_")
		require.Len(t, compiled, 1)
		assert.True(t, compiled[0].List)
		assert.Empty(t, compiled[0].Children)
	})

	t.Run("default value carries through", func(t *testing.T) {
		fields := []FieldSchema{{Key: "country", Type: FieldTypeString, Default: "FR"}}

		compiled := Compile(fields, "var_")
		require.Len(t, compiled, 1)
		assert.Equal(t, "FR", compiled[0].Default)
	})

	t.Run("missing label is derived from the key", func(t *testing.T) {
		fields := []FieldSchema{{Key: "invoiceNumber", Type: FieldTypeString}}

		compiled := Compile(fields, "var_")
		require.Len(t, compiled, 1)
		assert.Equal(t, "Invoice Number", compiled[0].Label)
	})

	t.Run("empty prefix falls back to the default", func(t *testing.T) {
		compiled := Compile([]FieldSchema{{Key: "a", Type: FieldTypeString}}, "")
		require.Len(t, compiled, 1)
		assert.Equal(t, "var_a", compiled[0].Key)
	})

	t.Run("empty schema compiles to an empty form", func(t *testing.T) {
		assert.Empty(t, Compile(nil, "var_"))
	})
}

func TestNormalizeType(t *testing.T) {
	for _, known := range []FieldType{
		FieldTypeString, FieldTypeText, FieldTypeNumber, FieldTypeInteger,
		FieldTypeBoolean, FieldTypeDatetime, FieldTypeFile, FieldTypeCopy,
	} {
		assert.Equal(t, known, NormalizeType(known))
	}
	assert.Equal(t, FieldTypeString, NormalizeType("quantum"))
}
