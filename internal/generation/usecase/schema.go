package usecase

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"taskextreme-ai/internal/model"
)

const draftSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "timeStart", "timeEnd", "date"],
    "properties": {
      "id":        {"type": "string"},
      "title":     {"type": "string", "minLength": 1},
      "details":   {"type": "string"},
      "timeStart": {"type": "string", "pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$"},
      "timeEnd":   {"type": "string", "pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$"},
      "date":      {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
      "repeat":    {},
      "dueDate":   {"type": ["string", "null"]},
      "completed": {"type": "boolean"}
    }
  }
}`

var draftSchema = mustCompileSchema(draftSchemaJSON)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return schema
}

// checkDrafts validates an extracted array against the task draft schema.
// It returns the number of drafts and a description of each violation.
func checkDrafts(tasks string) (int, []string) {
	var drafts []model.TaskDraft
	count := 0
	if err := json.Unmarshal([]byte(tasks), &drafts); err == nil {
		count = len(drafts)
	}

	result, err := draftSchema.Validate(gojsonschema.NewStringLoader(tasks))
	if err != nil {
		return count, []string{err.Error()}
	}
	if result.Valid() {
		return count, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, re.String())
	}
	return count, violations
}
