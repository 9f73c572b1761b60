package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// EventSchema describes the subset of the Lex V1 code hook event the
// fulfillment handler relies on.
const EventSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["invocationSource", "bot", "currentIntent"],
  "properties": {
    "messageVersion": {"type": "string"},
    "invocationSource": {
      "type": "string",
      "enum": ["DialogCodeHook", "FulfillmentCodeHook"]
    },
    "userId": {"type": "string"},
    "inputTranscript": {"type": "string"},
    "outputDialogMode": {"type": "string"},
    "sessionAttributes": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "string"}
    },
    "requestAttributes": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "string"}
    },
    "bot": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "alias": {"type": ["string", "null"]},
        "version": {"type": "string"}
      }
    },
    "currentIntent": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "slots": {
          "type": ["object", "null"],
          "additionalProperties": {"type": ["string", "null"]}
        },
        "confirmationStatus": {"type": "string"}
      }
    }
  }
}`

var eventSchema = mustCompile(EventSchema)

func mustCompile(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("compile event schema: %v", err))
	}
	return s
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateEvent checks a raw JSON event against EventSchema.
func ValidateEvent(raw []byte) *ValidationResult {
	result, err := eventSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "(root)",
				Message: err.Error(),
				Code:    "INVALID_JSON",
			}},
		}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}

	return &ValidationResult{
		Valid:  result.Valid(),
		Errors: errs,
	}
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a specific field and its children.
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// Summary joins all error messages into one line.
func (vr *ValidationResult) Summary() string {
	return strings.Join(vr.GetErrorMessages(), "; ")
}
