package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

func TestValidateSlug(t *testing.T) {
	valid := []string{"turn-toon", "ab", "dino-me-2024", "x9"}
	for _, slug := range valid {
		assert.NoError(t, model.ValidateSlug(slug), "slug %q", slug)
	}

	invalid := []string{"Turn Toon!", "a", "", "UPPER", "with_underscore", "spaced out"}
	for _, slug := range invalid {
		assert.ErrorIs(t, model.ValidateSlug(slug), model.ErrInvalidSlug, "slug %q", slug)
	}
}

func TestQuestionSchema_Validate(t *testing.T) {
	t.Run("missing template", func(t *testing.T) {
		s := &model.QuestionSchema{Questions: []model.Question{{ID: "a", Text: "A"}}}
		assert.ErrorIs(t, s.Validate(), model.ErrSchemaInvalid)
	})

	t.Run("missing questions", func(t *testing.T) {
		s := &model.QuestionSchema{PromptTemplate: "hello"}
		assert.ErrorIs(t, s.Validate(), model.ErrSchemaInvalid)
	})

	t.Run("duplicate question ids", func(t *testing.T) {
		s := &model.QuestionSchema{
			PromptTemplate: "{{a}}",
			Questions:      []model.Question{{ID: "a", Text: "A"}, {ID: "a", Text: "B"}},
		}
		assert.ErrorIs(t, s.Validate(), model.ErrSchemaInvalid)
	})

	t.Run("valid", func(t *testing.T) {
		s := &model.QuestionSchema{
			PromptTemplate: "{{a}}",
			Questions:      []model.Question{{ID: "a", Text: "A", Type: model.QuestionTypeText}},
		}
		assert.NoError(t, s.Validate())
	})
}

func TestGeneratorConfig_ResolveSchema(t *testing.T) {
	t.Run("nested schema preferred", func(t *testing.T) {
		cfg := model.GeneratorConfig{
			Schema:         &model.QuestionSchema{PromptTemplate: "new", Questions: []model.Question{{ID: "q"}}},
			Questions:      []model.Question{{ID: "legacy"}},
			PromptTemplate: "old",
		}
		schema, err := cfg.ResolveSchema()
		assert.NoError(t, err)
		assert.Equal(t, "new", schema.PromptTemplate)
	})

	t.Run("legacy flat fields normalized", func(t *testing.T) {
		cfg := model.GeneratorConfig{
			Questions:      []model.Question{{ID: "legacy"}},
			PromptTemplate: "old",
		}
		schema, err := cfg.ResolveSchema()
		assert.NoError(t, err)
		assert.Equal(t, "old", schema.PromptTemplate)
		assert.Len(t, schema.Questions, 1)
	})

	t.Run("empty config has no schema", func(t *testing.T) {
		_, err := model.GeneratorConfig{}.ResolveSchema()
		assert.ErrorIs(t, err, model.ErrSchemaInvalid)
	})
}

func TestNormalizeCode(t *testing.T) {
	code, err := model.NormalizeCode("  kiosk23 ")
	assert.NoError(t, err)
	assert.Equal(t, "KIOSK23", code)

	for _, bad := range []string{"abc", "", "TOOLONGCODE23"} {
		_, err := model.NormalizeCode(bad)
		assert.ErrorIs(t, err, model.ErrInvalidCode, "code %q", bad)
	}
}

func TestSessionCode_Remaining(t *testing.T) {
	sc := &model.SessionCode{MaxGenerations: 5, UsedGenerations: 3}
	assert.Equal(t, 2, sc.Remaining())

	sc.UsedGenerations = 7 // should never happen, but never negative
	assert.Equal(t, 0, sc.Remaining())
}

func TestSessionCode_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, (&model.SessionCode{}).Expired(now))
	assert.True(t, (&model.SessionCode{ExpiresAt: &past}).Expired(now))
	assert.False(t, (&model.SessionCode{ExpiresAt: &future}).Expired(now))
}
