package validation

import "errors"

// ErrSchemaValidation wraps every document that does not match its schema
var ErrSchemaValidation = errors.New("schema validation failed")

// Error messages
const (
	ErrMsgParseSchema   = "failed to parse schema"
	ErrMsgAddSchema     = "failed to add schema resource"
	ErrMsgCompileSchema = "failed to compile schema"
	ErrMsgUnknownSchema = "schema not registered"
	ErrMsgParseData     = "failed to parse JSON data"
	ErrMsgValidation    = "validation error"
)
