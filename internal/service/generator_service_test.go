package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/mocks"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

func validSchema() *model.QuestionSchema {
	return &model.QuestionSchema{
		Questions:      []model.Question{{ID: "mood", Text: "Mood?", Type: model.QuestionTypeText}},
		PromptTemplate: "A {{mood}} portrait",
	}
}

func TestGeneratorService_Create(t *testing.T) {
	ctx := context.Background()
	actor := &model.User{ID: uuid.New(), Role: model.RoleUser}

	t.Run("invalid slug rejected", func(t *testing.T) {
		svc := service.NewGeneratorService(mocks.NewMockGeneratorRepository(t))

		for _, slug := range []string{"Turn Toon!", "a", "UPPER", ""} {
			_, err := svc.Create(ctx, actor, service.CreateInput{Slug: slug, Name: "X"})
			assert.ErrorIs(t, err, model.ErrInvalidSlug, "slug %q", slug)
		}
	})

	t.Run("valid slug accepted", func(t *testing.T) {
		repo := mocks.NewMockGeneratorRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Generator")).
			Return(nil).Once().Run(func(args mock.Arguments) {
			gen := args.Get(1).(*model.Generator)
			assert.Equal(t, "turn-toon", gen.Slug)
			assert.True(t, gen.IsActive)
			assert.Equal(t, actor.ID, gen.CreatedByID)
		})

		svc := service.NewGeneratorService(repo)
		_, err := svc.Create(ctx, actor, service.CreateInput{Slug: "turn-toon", Name: "Turn Toon"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		repo := mocks.NewMockGeneratorRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(model.ErrSlugTaken).Once()

		svc := service.NewGeneratorService(repo)
		_, err := svc.Create(ctx, actor, service.CreateInput{Slug: "turn-toon", Name: "Turn Toon"})
		assert.ErrorIs(t, err, model.ErrSlugTaken)
	})

	t.Run("invalid schema rejected before persistence", func(t *testing.T) {
		repo := mocks.NewMockGeneratorRepository(t)
		svc := service.NewGeneratorService(repo)

		_, err := svc.Create(ctx, actor, service.CreateInput{
			Slug:   "turn-toon",
			Name:   "Turn Toon",
			Schema: &model.QuestionSchema{PromptTemplate: "no questions"},
		})
		assert.ErrorIs(t, err, model.ErrSchemaInvalid)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGeneratorService_Update_OwnershipGate(t *testing.T) {
	ctx := context.Background()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}
	stranger := &model.User{ID: uuid.New(), Role: model.RoleUser}
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin}

	existing := func() *model.Generator {
		return &model.Generator{
			ID: uuid.New(), Slug: "turn-toon", Name: "Turn Toon",
			IsActive: true, CreatedByID: owner.ID,
			Config: model.GeneratorConfig{Schema: validSchema()},
		}
	}

	newName := "Toon Deluxe"

	t.Run("stranger forbidden", func(t *testing.T) {
		repo := mocks.NewMockGeneratorRepository(t)
		repo.On("GetBySlug", mock.Anything, "turn-toon").Return(existing(), nil).Once()

		svc := service.NewGeneratorService(repo)
		_, err := svc.Update(ctx, stranger, "turn-toon", model.GeneratorPatch{Name: &newName})
		assert.ErrorIs(t, err, model.ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	for name, actor := range map[string]*model.User{"owner": owner, "admin": admin} {
		t.Run(name+" may update", func(t *testing.T) {
			repo := mocks.NewMockGeneratorRepository(t)
			repo.On("GetBySlug", mock.Anything, "turn-toon").Return(existing(), nil).Once()
			repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Generator")).
				Return(nil).Once().Run(func(args mock.Arguments) {
				assert.Equal(t, newName, args.Get(1).(*model.Generator).Name)
			})

			svc := service.NewGeneratorService(repo)
			_, err := svc.Update(ctx, actor, "turn-toon", model.GeneratorPatch{Name: &newName})
			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestGeneratorService_GetWithSchema_LegacyFallback(t *testing.T) {
	ctx := context.Background()

	// Pre-migration row: flat questions + template, no nested schema.
	legacy := &model.Generator{
		ID: uuid.New(), Slug: "old-booth", Name: "Old Booth", IsActive: true,
		Config: model.GeneratorConfig{
			Questions:      []model.Question{{ID: "style", Text: "Style?", Type: model.QuestionTypeSelect}},
			PromptTemplate: "In the style of {{style}}",
		},
	}

	repo := mocks.NewMockGeneratorRepository(t)
	repo.On("GetBySlug", mock.Anything, "old-booth").Return(legacy, nil).Once()

	svc := service.NewGeneratorService(repo)
	gen, schema, err := svc.GetWithSchema(ctx, "old-booth")
	assert.NoError(t, err)
	assert.Equal(t, "old-booth", gen.Slug)
	assert.NotNil(t, schema)
	assert.Equal(t, "In the style of {{style}}", schema.PromptTemplate)
	assert.Len(t, schema.Questions, 1)
}

func TestGeneratorService_SaveSchema_DropsLegacyFields(t *testing.T) {
	ctx := context.Background()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}

	legacy := &model.Generator{
		ID: uuid.New(), Slug: "old-booth", Name: "Old Booth", IsActive: true,
		CreatedByID: owner.ID,
		Config: model.GeneratorConfig{
			Questions:      []model.Question{{ID: "style", Text: "Style?", Type: model.QuestionTypeSelect}},
			PromptTemplate: "In the style of {{style}}",
		},
	}

	repo := mocks.NewMockGeneratorRepository(t)
	repo.On("GetBySlug", mock.Anything, "old-booth").Return(legacy, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Generator")).
		Return(nil).Once().Run(func(args mock.Arguments) {
		cfg := args.Get(1).(*model.Generator).Config
		assert.NotNil(t, cfg.Schema)
		assert.Empty(t, cfg.Questions)
		assert.Empty(t, cfg.PromptTemplate)
	})

	svc := service.NewGeneratorService(repo)
	assert.NoError(t, svc.SaveSchema(ctx, owner, "old-booth", validSchema()))
	repo.AssertExpectations(t)
}
