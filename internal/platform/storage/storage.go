// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package storage provides the object store used for catalog artwork and
page assets. It wraps a single Google Cloud Storage bucket behind a small
service interface so handlers never touch the GCS client directly.

Object keys follow a fixed layout:

	<category>/<unix-timestamp>-<sanitized-filename>

which keeps uploads for the same asset from colliding while leaving the
original filename recognizable in the bucket browser.
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/pkg/slug"
)

// Category namespaces object keys by what the asset is for.
type Category string

const (
	CategoryPoster Category = "posters"
	CategoryHero   Category = "hero"
	CategoryPage   Category = "pages"
	CategoryMisc   Category = "misc"
)

// validCategories guards key construction against arbitrary client input.
var validCategories = map[Category]bool{
	CategoryPoster: true,
	CategoryHero:   true,
	CategoryPage:   true,
	CategoryMisc:   true,
}

const uploadTimeout = 2 * time.Minute

// Service is the object storage contract consumed by the upload handlers.
type Service interface {
	Upload(ctx context.Context, category Category, filename string, contentType string, body io.Reader) (key string, publicURL string, err error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, category Category) ([]string, error)
	PublicURL(key string) string
}

type service struct {
	logger        *slog.Logger
	client        *gcs.Client
	bucket        string
	publicBaseURL string
}

// NewService creates a GCS-backed storage service.
//
// Parameters:
//   - ctx: startup context, used only for client creation
//   - logger: application logger
//   - bucket: target bucket name
//   - publicBaseURL: base URL for serving objects; empty means the
//     canonical storage.googleapis.com form
//
// Returns:
//   - Service: ready-to-use storage service
//   - error: client construction failure
func NewService(ctx context.Context, logger *slog.Logger, bucket, publicBaseURL string) (Service, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("storage: bucket name is required")
	}

	client, err := gcs.NewClient(ctx, option.WithScopes(gcs.ScopeReadWrite))
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}

	logger.Info("object storage initialized",
		slog.String("bucket", bucket),
		slog.String("public_base_url", publicBaseURL),
	)

	return &service{
		logger:        logger.With(slog.String("component", "storage")),
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}, nil
}

// BuildKey constructs the canonical object key for an upload. Exported so
// tests and handlers agree on the layout without uploading anything.
func BuildKey(category Category, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s", category, now.Unix(), slug.Filename(filename))
}

func (service *service) Upload(ctx context.Context, category Category, filename string, contentType string, body io.Reader) (string, string, error) {
	if !validCategories[category] {
		return "", "", apperr.ValidationError(fmt.Sprintf("Unknown upload category '%s'", category))
	}

	key := BuildKey(category, filename, time.Now().UTC())

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	writer := service.client.Bucket(service.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		writer.ContentType = contentType
	}
	writer.CacheControl = "public, max-age=31536000"

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()
		return "", "", apperr.BadGateway("Failed to write object to storage", err)
	}
	if err := writer.Close(); err != nil {
		return "", "", apperr.BadGateway("Failed to finalize storage object", err)
	}

	service.logger.Info("object uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return key, service.PublicURL(key), nil
}

func (service *service) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := service.client.Bucket(service.bucket).Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		// Deleting a missing object is a no-op, same as row deletes.
		return nil
	}
	if err != nil {
		return apperr.BadGateway(fmt.Sprintf("Failed to delete storage object '%s'", key), err)
	}
	return nil
}

func (service *service) List(ctx context.Context, category Category) ([]string, error) {
	if !validCategories[category] {
		return nil, apperr.ValidationError(fmt.Sprintf("Unknown upload category '%s'", category))
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	it := service.client.Bucket(service.bucket).Objects(ctx, &gcs.Query{Prefix: string(category) + "/"})
	keys := []string{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.BadGateway("Failed to list storage objects", err)
		}
		keys = append(keys, attrs.Name)
	}
	return keys, nil
}

func (service *service) PublicURL(key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if service.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", service.publicBaseURL, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", service.bucket, key)
}
