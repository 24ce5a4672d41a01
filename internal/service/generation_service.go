package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/ai"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/prompt"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/storage"
)

// GenerationService coordinates one generation request: validate, account
// quota, resolve the prompt, call the provider, store the result. No step
// is retried; an upstream failure surfaces directly to the caller.
type GenerationService struct {
	generators repository.GeneratorRepository
	images     repository.ImageRepository
	sessions   repository.SessionRepository
	codes      *CodeService
	provider   ai.ImageGenerator
	blobs      storage.BlobStore
}

func NewGenerationService(
	generators repository.GeneratorRepository,
	images repository.ImageRepository,
	sessions repository.SessionRepository,
	codes *CodeService,
	provider ai.ImageGenerator,
	blobs storage.BlobStore,
) *GenerationService {
	return &GenerationService{
		generators: generators,
		images:     images,
		sessions:   sessions,
		codes:      codes,
		provider:   provider,
		blobs:      blobs,
	}
}

// GenerateInput is one generation request.
type GenerateInput struct {
	GeneratorSlug string
	BaseImageID   *uuid.UUID
	Answers       prompt.Answers
	SessionID     *uuid.UUID
	SessionCode   string
}

// Generate runs the full flow and returns the stored GENERATED image.
//
// The quota increment happens before the provider call: no generation may be
// attempted until the ledger granted it. A client abort after that point
// does not roll the increment back.
func (s *GenerationService) Generate(ctx context.Context, actor *model.User, in GenerateInput) (*model.Image, error) {
	start := time.Now()
	img, err := s.generate(ctx, actor, in)
	generationDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		generationsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, model.ErrUpstreamFailure):
		generationsTotal.WithLabelValues("upstream_error").Inc()
	default:
		generationsTotal.WithLabelValues("denied").Inc()
	}
	return img, err
}

func (s *GenerationService) generate(ctx context.Context, actor *model.User, in GenerateInput) (*model.Image, error) {
	gen, err := s.generators.GetBySlug(ctx, in.GeneratorSlug)
	if err != nil {
		return nil, err
	}
	if !gen.IsActive {
		return nil, model.ErrGeneratorNotFound
	}
	schema, err := gen.Config.ResolveSchema()
	if err != nil {
		return nil, err
	}

	var baseImage *model.Image
	if in.BaseImageID != nil {
		baseImage, err = s.images.GetByID(ctx, *in.BaseImageID)
		if err != nil {
			return nil, err
		}
		if baseImage.Kind != model.ImageKindUploadBase {
			return nil, fmt.Errorf("%w: baseImageId must reference an uploaded image", model.ErrInvalidInput)
		}
	}

	var session *model.GenerationSession
	if in.SessionID != nil {
		session, err = s.sessions.GetByID(ctx, *in.SessionID)
		if err != nil {
			return nil, err
		}
		if actor != nil && !actor.CanEdit(session.CreatedByID) {
			return nil, model.ErrForbidden
		}
	}

	// Quota accounting precedes the provider call. This is the unit of
	// accounting: once the increment lands, it stays, even if the client
	// aborts or the provider fails.
	if in.SessionCode != "" {
		if _, err := s.codes.Verify(ctx, in.SessionCode, true); err != nil {
			return nil, err
		}
	} else if actor == nil {
		return nil, model.ErrUnauthorized
	}

	resolved := prompt.Resolve(schema.PromptTemplate, in.Answers)
	log.Debug().Str("generator", gen.Slug).Int("prompt_len", len(resolved)).Msg("Prompt resolved")

	result, err := s.provider.Generate(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
	}

	img := &model.Image{
		ID:          uuid.New(),
		Kind:        model.ImageKindGenerated,
		BaseImageID: in.BaseImageID,
		Prompt:      &resolved,
		MimeType:    result.MimeType,
		SessionID:   in.SessionID,
	}
	providerName := s.provider.Provider()
	img.Provider = &providerName
	if actor != nil {
		img.CreatedByID = &actor.ID
	}

	url, err := s.blobs.Put(ctx, BlobKey(img.ID), result.Data, result.MimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
	}
	img.URL = url

	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}

	log.Info().
		Str("id", img.ID.String()).
		Str("generator", gen.Slug).
		Str("provider", providerName).
		Msg("Image generated and stored")
	return img, nil
}
