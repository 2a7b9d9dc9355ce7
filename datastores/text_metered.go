package datastores

import (
	"context"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// TextMetered wraps a [TextStore] and meters its operations in a [metrics.Set].
type TextMetered struct {
	store TextStore
	set   *metrics.Set
}

var _ TextStore = (*TextMetered)(nil)

var textMeteredBuckets = metrics.ExponentialBuckets(1e-4, 5, 6) //nolint: gochecknoglobals,mnd // arbitrary

func NewTextMetered(store TextStore, set *metrics.Set) *TextMetered {
	return &TextMetered{store: store, set: set}
}

func (s *TextMetered) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.set.GetOrCreateCounter(`datastore_operations_total{op="` + op + `",result="` + result + `"}`).Inc()
	s.set.GetOrCreatePrometheusHistogramExt(`datastore_operation_duration_seconds{op="`+op+`"}`, textMeteredBuckets).
		UpdateDuration(start)
}

func (s *TextMetered) Exists(ctx context.Context, name string) bool {
	start := time.Now()
	ok := s.store.Exists(ctx, name)
	s.observe("exists", start, nil)
	return ok
}

func (s *TextMetered) ReadAllText(ctx context.Context, name string) (string, error) {
	start := time.Now()
	text, err := s.store.ReadAllText(ctx, name)
	s.observe("read", start, err)
	return text, err
}

func (s *TextMetered) WriteAllText(ctx context.Context, name, text string) error {
	start := time.Now()
	err := s.store.WriteAllText(ctx, name, text)
	s.observe("write", start, err)
	return err
}
