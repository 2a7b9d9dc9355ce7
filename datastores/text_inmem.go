package datastores

import (
	"context"
	"sync"
)

// TextInmem implements [TextStore] in memory.
type TextInmem struct {
	mu    sync.Mutex
	blobs map[string]string
}

var _ TextStore = (*TextInmem)(nil)

// NewTextInmem returns a [TextInmem] preloaded with name/text pairs.
func NewTextInmem(kv ...string) *TextInmem {
	blobs := make(map[string]string, len(kv)/2) //nolint: mnd // pairs
	for i := 0; i+1 < len(kv); i += 2 {
		blobs[kv[i]] = kv[i+1]
	}
	return &TextInmem{blobs: blobs}
}

func (s *TextInmem) Exists(_ context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[name]
	return ok
}

func (s *TextInmem) ReadAllText(_ context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.blobs[name]
	if !ok {
		return "", ErrObjectNotFound
	}
	return text, nil
}

func (s *TextInmem) WriteAllText(_ context.Context, name, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blobs == nil {
		s.blobs = make(map[string]string)
	}
	s.blobs[name] = text
	return nil
}
