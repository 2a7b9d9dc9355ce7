package datastores

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TextRedis implements [TextStore] with one string key per blob.
type TextRedis struct {
	Client redis.UniversalClient
	Prefix string
}

var _ TextStore = (*TextRedis)(nil)

func (s *TextRedis) key(name string) string { return s.Prefix + name }

// Ping checks the server is reachable.
func (s *TextRedis) Ping(ctx context.Context) error { return s.Client.Ping(ctx).Err() }

func (s *TextRedis) Exists(ctx context.Context, name string) bool {
	n, err := s.Client.Exists(ctx, s.key(name)).Result()
	return err == nil && n > 0
}

func (s *TextRedis) ReadAllText(ctx context.Context, name string) (string, error) {
	text, err := s.Client.Get(ctx, s.key(name)).Result()
	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, redis.Nil):
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, name)
	default:
		return "", fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}
}

func (s *TextRedis) WriteAllText(ctx context.Context, name, text string) error {
	err := s.Client.Set(ctx, s.key(name), text, 0).Err()
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, name, err)
	}
	return nil
}
