package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageKind distinguishes uploaded base photos from AI-generated results.
type ImageKind string

const (
	ImageKindUploadBase ImageKind = "UPLOAD_BASE"
	ImageKindGenerated  ImageKind = "GENERATED"
)

// Image is persisted metadata for one stored picture. The binary blob lives
// in object storage, keyed by the image id, written once and never mutated.
// A GENERATED image may point at the UPLOAD_BASE it was derived from.
type Image struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	URL         string     `json:"url" db:"url"`
	Kind        ImageKind  `json:"kind" db:"kind"`
	BaseImageID *uuid.UUID `json:"baseImageId,omitempty" db:"base_image_id"`
	Prompt      *string    `json:"prompt,omitempty" db:"prompt"`
	Provider    *string    `json:"provider,omitempty" db:"provider"`
	MimeType    string     `json:"mimeType" db:"mime_type"`
	SessionID   *uuid.UUID `json:"sessionId,omitempty" db:"session_id"`
	CreatedByID *uuid.UUID `json:"createdById,omitempty" db:"created_by_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// ImagePair is a GENERATED image joined with the URL of its originating base.
type ImagePair struct {
	Image
	BaseURL     *string `json:"baseUrl,omitempty" db:"base_url"`
	SessionName *string `json:"sessionName,omitempty" db:"session_name"`
}
