package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/ai"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/mocks"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/prompt"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

type generationFixture struct {
	generators *mocks.MockGeneratorRepository
	images     *mocks.MockImageRepository
	sessions   *mocks.MockSessionRepository
	codes      *mocks.MockSessionCodeRepository
	provider   *mocks.MockImageGenerator
	blobs      *mocks.MockBlobStore
	svc        *service.GenerationService
}

func newGenerationFixture(t *testing.T) *generationFixture {
	f := &generationFixture{
		generators: mocks.NewMockGeneratorRepository(t),
		images:     mocks.NewMockImageRepository(t),
		sessions:   mocks.NewMockSessionRepository(t),
		codes:      mocks.NewMockSessionCodeRepository(t),
		provider:   mocks.NewMockImageGenerator(t),
		blobs:      mocks.NewMockBlobStore(t),
	}
	f.svc = service.NewGenerationService(
		f.generators, f.images, f.sessions,
		service.NewCodeService(f.codes), f.provider, f.blobs,
	)
	return f
}

func dinoGenerator(ownerID uuid.UUID) *model.Generator {
	return &model.Generator{
		ID:       uuid.New(),
		Slug:     "dino-me",
		Name:     "Dino Me",
		IsActive: true,
		Config: model.GeneratorConfig{
			Schema: &model.QuestionSchema{
				Questions: []model.Question{
					{ID: "dinosaur", Text: "Pick a species", Type: model.QuestionTypeSelect},
					{ID: "skinColor", Text: "Skin color?", Type: model.QuestionTypeText},
				},
				PromptTemplate: "Species: {{dinosaur}}. {{#if skinColor}}Color: {{skinColor}}.{{/if}}",
			},
		},
		CreatedByID: ownerID,
	}
}

func TestGenerationService_Generate_HappyPath(t *testing.T) {
	ctx := context.Background()
	actor := &model.User{ID: uuid.New(), Role: model.RoleUser}
	baseID := uuid.New()

	f := newGenerationFixture(t)
	f.generators.On("GetBySlug", mock.Anything, "dino-me").Return(dinoGenerator(actor.ID), nil).Once()
	f.images.On("GetByID", mock.Anything, baseID).
		Return(&model.Image{ID: baseID, Kind: model.ImageKindUploadBase, MimeType: "image/jpeg"}, nil).Once()
	f.provider.On("Generate", mock.Anything, "Species: T-Rex. ").
		Return(&ai.GeneratedImage{Data: []byte("png"), MimeType: "image/png"}, nil).Once()
	f.provider.On("Provider").Return("openai:gpt-image-1").Once()
	f.blobs.On("Put", mock.Anything, mock.AnythingOfType("string"), []byte("png"), "image/png").
		Return("https://cdn.example.com/x", nil).Once()
	f.images.On("Create", mock.Anything, mock.AnythingOfType("*model.Image")).
		Return(nil).Once().Run(func(args mock.Arguments) {
		img := args.Get(1).(*model.Image)
		assert.Equal(t, model.ImageKindGenerated, img.Kind)
		assert.Equal(t, &baseID, img.BaseImageID)
		assert.Equal(t, "Species: T-Rex. ", *img.Prompt)
		assert.Equal(t, "openai:gpt-image-1", *img.Provider)
	})

	img, err := f.svc.Generate(ctx, actor, service.GenerateInput{
		GeneratorSlug: "dino-me",
		BaseImageID:   &baseID,
		Answers:       prompt.Answers{"dinosaur": "T-Rex"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/x", img.URL)

	f.generators.AssertExpectations(t)
	f.provider.AssertExpectations(t)
	f.images.AssertExpectations(t)
}

func TestGenerationService_Generate_QuotaConsumedBeforeProviderCall(t *testing.T) {
	ctx := context.Background()

	f := newGenerationFixture(t)
	f.generators.On("GetBySlug", mock.Anything, "dino-me").Return(dinoGenerator(uuid.New()), nil).Once()
	f.codes.On("GetByCode", mock.Anything, "KIOSK23").
		Return(&model.SessionCode{Code: "KIOSK23", IsActive: true, MaxGenerations: 5, UsedGenerations: 5}, nil).Once()

	// Quota exhausted: the provider must never be called.
	_, err := f.svc.Generate(ctx, nil, service.GenerateInput{
		GeneratorSlug: "dino-me",
		Answers:       prompt.Answers{"dinosaur": "T-Rex"},
		SessionCode:   "KIOSK23",
	})
	assert.ErrorIs(t, err, model.ErrCodeQuotaExceeded)
	f.provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerationService_Generate_AnonymousNeedsCode(t *testing.T) {
	ctx := context.Background()

	f := newGenerationFixture(t)
	f.generators.On("GetBySlug", mock.Anything, "dino-me").Return(dinoGenerator(uuid.New()), nil).Once()

	_, err := f.svc.Generate(ctx, nil, service.GenerateInput{
		GeneratorSlug: "dino-me",
		Answers:       prompt.Answers{"dinosaur": "T-Rex"},
	})
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestGenerationService_Generate_UpstreamFailureNoRetry(t *testing.T) {
	ctx := context.Background()
	actor := &model.User{ID: uuid.New(), Role: model.RoleUser}

	f := newGenerationFixture(t)
	f.generators.On("GetBySlug", mock.Anything, "dino-me").Return(dinoGenerator(actor.ID), nil).Once()
	f.provider.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return(nil, errors.New("provider 503")).Once()

	_, err := f.svc.Generate(ctx, actor, service.GenerateInput{
		GeneratorSlug: "dino-me",
		Answers:       prompt.Answers{"dinosaur": "Stego"},
	})
	assert.ErrorIs(t, err, model.ErrUpstreamFailure)

	// Exactly one attempt: failures surface, they are never retried.
	f.provider.AssertNumberOfCalls(t, "Generate", 1)
	f.images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerationService_Generate_InactiveGeneratorHidden(t *testing.T) {
	ctx := context.Background()
	actor := &model.User{ID: uuid.New(), Role: model.RoleUser}

	gen := dinoGenerator(actor.ID)
	gen.IsActive = false

	f := newGenerationFixture(t)
	f.generators.On("GetBySlug", mock.Anything, "dino-me").Return(gen, nil).Once()

	_, err := f.svc.Generate(ctx, actor, service.GenerateInput{
		GeneratorSlug: "dino-me",
		Answers:       prompt.Answers{"dinosaur": "T-Rex"},
	})
	assert.ErrorIs(t, err, model.ErrGeneratorNotFound)
}

func TestGenerationService_Generate_WrongKindBase(t *testing.T) {
	ctx := context.Background()
	actor := &model.User{ID: uuid.New(), Role: model.RoleUser}
	baseID := uuid.New()

	f := newGenerationFixture(t)
	f.generators.On("GetBySlug", mock.Anything, "dino-me").Return(dinoGenerator(actor.ID), nil).Once()
	f.images.On("GetByID", mock.Anything, baseID).
		Return(&model.Image{ID: baseID, Kind: model.ImageKindGenerated, MimeType: "image/png"}, nil).Once()

	_, err := f.svc.Generate(ctx, actor, service.GenerateInput{
		GeneratorSlug: "dino-me",
		BaseImageID:   &baseID,
		Answers:       prompt.Answers{"dinosaur": "T-Rex"},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
