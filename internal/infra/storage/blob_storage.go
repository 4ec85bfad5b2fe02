// Package storage persists the few values the client keeps across restarts:
// the session tokens and the sidebar preference.
package storage

import (
	"context"
	"log/slog"
	"strconv"

	"curator/config"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Storage keys.
const (
	KeyAccessToken      = "curator_access_token"
	KeyRefreshToken     = "curator_refresh_token"
	KeySidebarCollapsed = "curator_sidebar_collapsed"
)

// BlobStorage implements TokenStorage and PreferenceStorage on a blob bucket.
type BlobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Open opens the bucket at url (file:// or mem://).
func Open(ctx context.Context, url string, logger *slog.Logger) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open storage bucket %s", url)
	}

	return &BlobStorage{bucket: bucket, logger: logger}, nil
}

// LoadTokens returns the stored pair. A missing token is an empty string.
func (s *BlobStorage) LoadTokens(ctx context.Context) (entity.TokenPair, error) {
	access, err := s.read(ctx, KeyAccessToken)
	if err != nil && !errors.Is(err, repository.ErrNotStored) {
		return entity.TokenPair{}, err
	}

	refresh, err := s.read(ctx, KeyRefreshToken)
	if err != nil && !errors.Is(err, repository.ErrNotStored) {
		return entity.TokenPair{}, err
	}

	return entity.TokenPair{AccessToken: string(access), RefreshToken: string(refresh)}, nil
}

// SaveTokens writes both tokens. An empty token deletes its key.
func (s *BlobStorage) SaveTokens(ctx context.Context, tokens entity.TokenPair) error {
	if err := s.writeOrDelete(ctx, KeyAccessToken, tokens.AccessToken); err != nil {
		return err
	}

	return s.writeOrDelete(ctx, KeyRefreshToken, tokens.RefreshToken)
}

// ClearTokens removes both tokens.
func (s *BlobStorage) ClearTokens(ctx context.Context) error {
	if err := s.delete(ctx, KeyAccessToken); err != nil {
		return err
	}

	return s.delete(ctx, KeyRefreshToken)
}

// LoadSidebarCollapsed returns repository.ErrNotStored when never saved.
func (s *BlobStorage) LoadSidebarCollapsed(ctx context.Context) (bool, error) {
	data, err := s.read(ctx, KeySidebarCollapsed)
	if err != nil {
		return false, err
	}

	collapsed, err := strconv.ParseBool(string(data))
	if err != nil {
		s.logger.Warn("Ignoring malformed sidebar preference", slog.String("value", string(data)))

		return false, repository.ErrNotStored
	}

	return collapsed, nil
}

// SaveSidebarCollapsed stores the flag.
func (s *BlobStorage) SaveSidebarCollapsed(ctx context.Context, collapsed bool) error {
	return s.write(ctx, KeySidebarCollapsed, strconv.FormatBool(collapsed))
}

// Close closes the bucket.
func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *BlobStorage) read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrNotStored
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *BlobStorage) write(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *BlobStorage) writeOrDelete(ctx context.Context, key, value string) error {
	if value == "" {
		return s.delete(ctx, key)
	}

	return s.write(ctx, key, value)
}

func (s *BlobStorage) delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (*BlobStorage, error) {
	s, err := Open(params.Ctx, params.Config.Storage.URL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Durable storage opened", slog.String("url", params.Config.Storage.URL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing durable storage")

			return s.Close()
		},
	})

	return s, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(s *BlobStorage) repository.TokenStorage { return s },
		func(s *BlobStorage) repository.PreferenceStorage { return s },
	),
)
