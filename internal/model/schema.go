package model

import "fmt"

// QuestionType enumerates the supported question widgets.
type QuestionType string

const (
	QuestionTypeText        QuestionType = "text"
	QuestionTypeSelect      QuestionType = "select"
	QuestionTypeMultiSelect QuestionType = "multi-select"
	QuestionTypeGender      QuestionType = "gender"
)

// Question is a single entry in a generator's question schema. IDs must be
// unique within the schema; they are the substitution keys of the prompt
// template.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	AllowCustom bool         `json:"allowCustom,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// QuestionSchema is the question set plus the prompt template its answers
// are substituted into.
type QuestionSchema struct {
	Title          string    `json:"title,omitempty"`
	Intro          string    `json:"intro,omitempty"`
	Questions      []Question `json:"questions"`
	References     []string  `json:"references,omitempty"`
	PromptTemplate string    `json:"promptTemplate"`
}

// Validate rejects schemas missing the prompt template or the question list.
// Called at save time; resolution never validates.
func (s *QuestionSchema) Validate() error {
	if s == nil {
		return ErrSchemaInvalid
	}
	if s.PromptTemplate == "" {
		return fmt.Errorf("%w: promptTemplate is required", ErrSchemaInvalid)
	}
	if len(s.Questions) == 0 {
		return fmt.Errorf("%w: questions are required", ErrSchemaInvalid)
	}
	seen := make(map[string]struct{}, len(s.Questions))
	for _, q := range s.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question id is required", ErrSchemaInvalid)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate question id %q", ErrSchemaInvalid, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}
