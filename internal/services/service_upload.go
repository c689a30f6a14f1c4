package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"absss-backend/dto"
	"absss-backend/internal/errs"
	"absss-backend/internal/storage"

	"github.com/google/uuid"
)

const (
	UploadImage = "image"
	UploadPDF   = "pdf"

	MaxImageSize = 5 << 20
	MaxPDFSize   = 10 << 20
)

type uploadRule struct {
	folder  string
	maxSize int64
	accepts func(contentType string) bool
}

var uploadRules = map[string]uploadRule{
	UploadImage: {
		folder:  "images",
		maxSize: MaxImageSize,
		accepts: func(ct string) bool { return strings.HasPrefix(ct, "image/") },
	},
	UploadPDF: {
		folder:  "pdfs",
		maxSize: MaxPDFSize,
		accepts: func(ct string) bool { return ct == "application/pdf" },
	},
}

// UploadService hands files to the configured media host. A nil store
// means uploads are not configured.
type UploadService struct {
	store  storage.MediaStore
	newKey func() string
}

func NewUploadService(store storage.MediaStore) *UploadService {
	return &UploadService{store: store, newKey: uuid.NewString}
}

func (s *UploadService) Enabled() bool { return s.store != nil }

// Upload checks the declared MIME type and size only; the bytes are never
// inspected.
func (s *UploadService) Upload(ctx context.Context, kind, filename, contentType string, size int64, r io.Reader) (dto.UploadResultDTO, error) {
	rule, ok := uploadRules[kind]
	if !ok {
		return dto.UploadResultDTO{}, fmt.Errorf("upload kind %q: %w", kind, errs.ErrNotFound)
	}
	if s.store == nil {
		return dto.UploadResultDTO{}, fmt.Errorf("no media provider configured: %w", errs.ErrStorageUnavailable)
	}

	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch {
	case size <= 0:
		return dto.UploadResultDTO{}, errs.NewValidationError(errs.Field("file", "file is empty"))
	case !rule.accepts(ct):
		return dto.UploadResultDTO{}, errs.NewValidationError(errs.Field("file", fmt.Sprintf("%s uploads do not accept %q", kind, ct)))
	case size > rule.maxSize:
		return dto.UploadResultDTO{}, errs.NewValidationError(errs.Field("file", fmt.Sprintf("must be at most %d MB", rule.maxSize>>20)))
	}

	key := rule.folder + "/" + s.newKey() + extension(filename, ct)
	if err := s.store.Put(ctx, key, r, size, ct); err != nil {
		return dto.UploadResultDTO{}, fmt.Errorf("store %s: %w: %v", key, errs.ErrStorageUnavailable, err)
	}
	return dto.UploadResultDTO{URL: s.store.URL(key), Key: key, Size: size, ContentType: ct}, nil
}

// preferredExt overrides the alphabetical first pick of mime.ExtensionsByType
// (".jfif" for image/jpeg).
var preferredExt = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// extension keeps the client's extension only when it maps back to the
// declared content type.
func extension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && len(ext) <= 6 {
		if known, _, err := mime.ParseMediaType(mime.TypeByExtension(ext)); err == nil && known == contentType {
			return ext
		}
	}
	if ext, ok := preferredExt[contentType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
