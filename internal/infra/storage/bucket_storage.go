// Package storage stores uploaded and generated images in a gocloud.dev bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"forthecos/config"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/lifecycle"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// MediaPathPrefix is the route that serves stored objects when no public base URL is set.
const MediaPathPrefix = "/media/"

// ErrObjectNotFound is returned when a key does not exist in the bucket.
var ErrObjectNotFound = domainerrors.ErrNotFound.WithDetails("object not found")

type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	httpClient    *http.Client
	logger        *slog.Logger
	now           func() time.Time
}

// NewBucketStorage wraps an opened bucket. publicBaseURL prefixes keys in returned URLs;
// when empty, URLs point at MediaPathPrefix.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ObjectStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		httpClient:    http.DefaultClient,
		logger:        logger,
		now:           time.Now,
	}
}

// Params defines the dependencies of the fx-provided storage.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.ObjectStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucketURL := params.Config.Storage.BucketURL
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Object storage opened", slog.String("bucket", bucketURL))

	return NewBucketStorage(bucket, params.Config.Storage.PublicBaseURL, params.Logger), nil
}

// Upload writes data under prefix as {prefix}/{unixMillis}-{rand}{ext}.
// A value that is already an http(s) URL is returned unchanged.
func (s *bucketStorage) Upload(ctx context.Context, prefix string, data []byte, contentType string) (string, error) {
	if bytes.HasPrefix(data, []byte("http")) {
		return string(data), nil
	}
	if len(data) == 0 {
		return "", errors.New("refusing to upload an empty object")
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := s.newKey(prefix, contentType)
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.DebugContext(ctx, "Object uploaded",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return s.publicURL(key), nil
}

// Open streams the object stored under key together with its content type.
func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, "", ErrObjectNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Fetch reads a URL produced by Upload straight from the bucket and falls back to HTTP for foreign URLs.
func (s *bucketStorage) Fetch(ctx context.Context, url string) ([]byte, error) {
	if key, ok := s.keyFromURL(url); ok {
		data, err := s.bucket.ReadAll(ctx, key)
		if err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				return nil, ErrObjectNotFound
			}

			return nil, errors.Wrapf(err, "failed to read object %s", key)
		}

		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build fetch request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read fetched body")
	}

	return data, nil
}

func (s *bucketStorage) newKey(prefix, contentType string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("%s/%d-%s%s", strings.Trim(prefix, "/"), s.now().UnixMilli(), suffix, extensionFor(contentType))
}

func (s *bucketStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return MediaPathPrefix + key
	}

	return s.publicBaseURL + "/" + key
}

func (s *bucketStorage) keyFromURL(url string) (string, bool) {
	if s.publicBaseURL != "" && strings.HasPrefix(url, s.publicBaseURL+"/") {
		return strings.TrimPrefix(url, s.publicBaseURL+"/"), true
	}
	if strings.HasPrefix(url, MediaPathPrefix) {
		return strings.TrimPrefix(url, MediaPathPrefix), true
	}

	return "", false
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
