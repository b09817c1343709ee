package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-gallery/apperr"
	"prompt-gallery/config"
	"prompt-gallery/slug"
	"prompt-gallery/storage"
)

// Uploader is the object-store contract the services need: store a
// blob and get a stable public URL back, or release one.
type Uploader interface {
	Upload(ctx context.Context, file storage.File, folder string) (*storage.UploadResult, error)
	Delete(ctx context.Context, url string) error
}

// requiredField pairs a field name with its submitted value so
// validation can report every blank field at once, in input order.
type requiredField struct {
	name  string
	value string
}

// validateRequired returns a validation error enumerating every blank
// or whitespace-only field, or nil when all are present.
func validateRequired(fields []requiredField) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperr.NewValidation(missing...)
	}
	return nil
}

// checkUpload enforces the size cap and extension allow-list. A nil
// file passes only when required is false.
func checkUpload(file *storage.File, cfg config.UploadConfig, fieldName string, required bool) error {
	if file == nil {
		if required {
			return apperr.NewUploadRequired(fieldName)
		}
		return nil
	}
	maxBytes := cfg.MaxSizeMB * 1024 * 1024
	if maxBytes > 0 && int64(len(file.Data)) > maxBytes {
		return apperr.NewValidation(fieldName + " exceeds the size limit")
	}
	ext := strings.ToLower(strings.TrimPrefix(extOf(file.Filename), "."))
	for _, allowed := range cfg.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			if strings.HasPrefix(file.ContentType, "image/") || strings.HasPrefix(file.ContentType, "video/") {
				return nil
			}
			break
		}
	}
	return apperr.NewValidation(fieldName + " must be an allowed image or video type")
}

func extOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}

// uniqueSlug derives the slug from a title and resolves collisions by
// appending a short random suffix, re-checking until it is free.
func uniqueSlug(ctx context.Context, title string, exclude primitive.ObjectID, exists func(context.Context, string, primitive.ObjectID) (bool, error)) (string, error) {
	s := slug.Make(title)
	for {
		taken, err := exists(ctx, s, exclude)
		if err != nil {
			return "", err
		}
		if !taken {
			return s, nil
		}
		s = slug.WithSuffix(slug.Make(title))
	}
}

// parseTags splits a comma-separated tag field, trimming blanks.
func parseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// mapMongoErr converts driver not-found sentinels into the application
// taxonomy; other errors pass through untouched.
func mapMongoErr(err error, resource string) error {
	if err == mongo.ErrNoDocuments {
		return apperr.NewNotFound(resource)
	}
	return err
}
