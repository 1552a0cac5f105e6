// Package documents stages uploaded CVs in the object store and extracts their text.
package documents

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvos-backend/internal/extract"
	"cvos-backend/internal/shared/storage/object"
	"cvos-backend/internal/shared/telemetry"
)

// PDFMimeType is the only content type accepted for analysis.
const PDFMimeType = "application/pdf"

// Service contains business logic for staged documents.
type Service struct {
	Store object.ObjectStore
}

// Stage saves r to object storage after checking that both the declared content
// type and the sniffed one are PDF. An empty declared type defers to sniffing.
// Callers must Discard the returned document.
func (s *Service) Stage(ctx context.Context, owner, fileName, declaredType string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if declaredType != "" && !IsPDF(declaredType) {
		return Document{}, ErrUnsupportedType
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, owner, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("stage upload: %w", err)
	}

	doc := Document{
		ID:         uuid.NewString(),
		Owner:      owner,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}
	if !IsPDF(mimeType) {
		s.Discard(ctx, doc)
		return Document{}, ErrUnsupportedType
	}
	return doc, nil
}

// Text extracts the document's text and page count.
func (s *Service) Text(ctx context.Context, doc Document) (extract.Document, error) {
	return extract.FromObject(ctx, s.Store, doc.StorageKey)
}

// Discard removes the staged object. Failures are logged, not returned.
func (s *Service) Discard(ctx context.Context, doc Document) {
	if doc.StorageKey == "" {
		return
	}
	// Cleanup must run even when the request context is already canceled.
	if err := s.Store.Delete(context.WithoutCancel(ctx), doc.StorageKey); err != nil {
		telemetry.Warn("documents.discard_failed", map[string]any{
			"storage_key": doc.StorageKey,
			"error":       err,
		})
	}
}

// IsPDF reports whether a content type (parameters allowed) names a PDF.
func IsPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, PDFMimeType)
}
