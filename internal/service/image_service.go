package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/storage"
)

// ImageService tracks base/generated image pairs and enforces safe deletion.
type ImageService struct {
	images repository.ImageRepository
	blobs  storage.BlobStore
}

func NewImageService(images repository.ImageRepository, blobs storage.BlobStore) *ImageService {
	return &ImageService{images: images, blobs: blobs}
}

// BlobKey is the object-storage key of an image id.
func BlobKey(id uuid.UUID) string {
	return "images/" + id.String()
}

// Upload stores a base photo blob and its metadata row.
func (s *ImageService) Upload(ctx context.Context, actor *model.User, data []byte, mimeType string, sessionID *uuid.UUID) (*model.Image, error) {
	if actor == nil {
		return nil, model.ErrUnauthorized
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", model.ErrInvalidInput)
	}

	img := &model.Image{
		ID:          uuid.New(),
		Kind:        model.ImageKindUploadBase,
		MimeType:    mimeType,
		SessionID:   sessionID,
		CreatedByID: &actor.ID,
	}

	url, err := s.blobs.Put(ctx, BlobKey(img.ID), data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
	}
	img.URL = url

	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	log.Info().Str("id", img.ID.String()).Int("size_bytes", len(data)).Msg("Base image uploaded")
	return img, nil
}

// Delete removes an image and its blob. Deleting a GENERATED image also
// removes its base image when no other GENERATED image references it; that
// secondary deletion is best-effort (the primary delete already succeeded,
// failures are logged and swallowed).
func (s *ImageService) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, BlobKey(id)); err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("Failed to delete image blob, record already removed")
	}

	if img.Kind == model.ImageKindGenerated && img.BaseImageID != nil {
		s.reapOrphanedBase(ctx, *img.BaseImageID, id)
	}
	return nil
}

// reapOrphanedBase deletes the base image when the removed generated image
// was its last reference. Best-effort by design of the delete contract.
func (s *ImageService) reapOrphanedBase(ctx context.Context, baseID, deletedID uuid.UUID) {
	remaining, err := s.images.CountGeneratedForBase(ctx, baseID, deletedID)
	if err != nil {
		log.Warn().Err(err).Str("base_image_id", baseID.String()).Msg("Failed to count base references, keeping base image")
		return
	}
	if remaining > 0 {
		return
	}

	if err := s.images.Delete(ctx, baseID); err != nil {
		log.Warn().Err(err).Str("base_image_id", baseID.String()).Msg("Failed to delete orphaned base image record")
		return
	}
	if err := s.blobs.Delete(ctx, BlobKey(baseID)); err != nil {
		log.Warn().Err(err).Str("base_image_id", baseID.String()).Msg("Failed to delete orphaned base image blob")
	}
	log.Info().Str("base_image_id", baseID.String()).Msg("Orphaned base image removed")
}

// ListPairs returns generated images with their base URL, newest first.
// filter is a case-insensitive substring match over prompt text and session
// name.
func (s *ImageService) ListPairs(ctx context.Context, filter string, limit, offset int) ([]model.ImagePair, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.images.ListPairs(ctx, filter, limit, offset)
}
