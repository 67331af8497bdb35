package report

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["candidateInfo", "assessmentData"],
  "additionalProperties": false,
  "properties": {
    "candidateInfo": {
      "type": "object",
      "required": ["name", "date", "currentRole", "currentCompany", "currentSalary",
                   "minimumSalary", "noticePeriod", "relocationOpen", "notes"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "date": {"type": "string"},
        "currentRole": {"type": "string"},
        "currentCompany": {"type": "string"},
        "currentSalary": {"type": "string"},
        "minimumSalary": {"type": "string"},
        "noticePeriod": {"type": "string"},
        "relocationOpen": {"type": "boolean"},
        "notes": {"type": "string"}
      }
    },
    "assessmentData": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "questions"],
        "additionalProperties": false,
        "properties": {
          "title": {"type": "string"},
          "questions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["question", "score", "notes"],
              "additionalProperties": false,
              "properties": {
                "question": {"type": "string"},
                "score": {"type": "integer", "minimum": 0, "maximum": 5},
                "notes": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func schema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	return compiledSchema, schemaErr
}

// ValidateDocument проверяет выгружаемый документ по схеме
func ValidateDocument(doc []byte) error {
	s, err := schema()
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки схемы отчёта")
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.Wrap(err, "ошибка проверки отчёта")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return errors.Errorf("отчёт не соответствует схеме: %s", strings.Join(msgs, "; "))
	}
	return nil
}
