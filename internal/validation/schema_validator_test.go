package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"],
	"additionalProperties": false
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("person.json", []byte(personSchema)))

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "Ares", "age": 30}`},
		{name: "optional field omitted", data: `{"name": "Ares"}`},
		{name: "missing required field", data: `{"age": 25}`, wantErr: true, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "Ares", "age": "thirty"}`, wantErr: true, errorMsg: "/age"},
		{name: "below minimum", data: `{"name": "Ares", "age": -1}`, wantErr: true, errorMsg: "minimum"},
		{name: "unknown field", data: `{"name": "Ares", "crew": 3}`, wantErr: true, errorMsg: "additionalProperties"},
		{name: "malformed JSON", data: `{"name": `, wantErr: true, errorMsg: ErrMsgParseData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.json")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrorIsWrapped(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("person.json", []byte(personSchema)))

	err := v.ValidateBytes([]byte(`{}`), "person.json")
	assert.ErrorIs(t, err, ErrSchemaValidation)
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownSchema)
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	v := NewSchemaValidator()

	assert.Error(t, v.AddSchema("broken.json", []byte(`{"type": `)))
	assert.Error(t, v.AddSchema("bad-type.json", []byte(`{"type": 12}`)))
}

func TestSchemaValidator_AddSchemaTwice(t *testing.T) {
	v := NewSchemaValidator()

	require.NoError(t, v.AddSchema("person.json", []byte(personSchema)))
	assert.NoError(t, v.AddSchema("person.json", []byte(personSchema)))
}
