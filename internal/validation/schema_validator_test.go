package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func newTestValidator() SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(personSchema)},
		"broken.schema.json": &fstest.MapFile{Data: []byte(`{"type": `)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "Mei", "age": 30}`},
		{name: "valid without optional field", data: `{"name": "Mei"}`},
		{name: "missing required field", data: `{"age": 25}`, wantErr: true, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "Mei", "age": "thirty"}`, wantErr: true, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "Mei", "age": -5}`, wantErr: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "Mei", "age": }`, wantErr: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateValue(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.ValidateValue(map[string]interface{}{"name": "Lan"}, "person.schema.json"))
	assert.Error(t, v.ValidateValue(map[string]interface{}{}, "person.schema.json"))
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = v.ValidateBytes([]byte(`{}`), "broken.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse schema JSON")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := newTestValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "person.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "person.schema.json"))
	assert.Len(t, v.schemas, 1)
}
