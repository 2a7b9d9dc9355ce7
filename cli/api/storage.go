package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/redis/go-redis/v9"

	"github.com/oaiiae/contacts-api/datastores"
)

type StorageOptions struct {
	Storage       string `                   doc:"store contacts in file, inmem, sqlite or redis" default:"file"`
	StorageName   string `                   doc:"name of the persisted contacts document"         default:"contacts.json"`
	StorageDir    string `                   doc:"directory of the file storage"                   default:"."`
	SQLitePath    string `name:"sqlite-path" doc:"database path of the sqlite storage"             default:"contacts.db"`
	RedisAddr     string `                   doc:"address of the redis storage"                    default:"localhost:6379"`
	RedisPassword string `                   doc:"password of the redis storage"`
	RedisDB       int    `                   doc:"database of the redis storage"                   default:"0"`
	RedisPrefix   string `                   doc:"key prefix of the redis storage"                 default:"contacts:"`
}

// Store is an opened [datastores.TextStore].
type Store struct {
	datastores.TextStore

	// Ready reports whether the backend is reachable.
	Ready func(context.Context) error
	// Close releases the backend.
	Close func() error
}

func nopReady(context.Context) error { return nil }
func nopClose() error                { return nil }

// OpenStore opens the backend selected by options, metered in set.
func OpenStore(ctx context.Context, options *StorageOptions, set *metrics.Set, logger *slog.Logger) (*Store, error) {
	var store Store
	switch strings.ToLower(options.Storage) {
	case "", "file":
		store = Store{&datastores.TextFiles{Root: options.StorageDir}, nopReady, nopClose}
	case "inmem":
		store = Store{datastores.NewTextInmem(), nopReady, nopClose}
	case "sqlite":
		s, err := datastores.OpenTextSQLite(ctx, options.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = Store{s, s.Ping, s.Close}
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     options.RedisAddr,
			Password: options.RedisPassword,
			DB:       options.RedisDB,
		})
		s := &datastores.TextRedis{Client: client, Prefix: options.RedisPrefix}
		err := s.Ping(ctx)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		store = Store{s, s.Ping, client.Close}
	default:
		return nil, fmt.Errorf("unknown storage %q", options.Storage)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "storage opened",
		slog.String("storage", options.Storage),
		slog.String("name", options.StorageName),
	)
	store.TextStore = datastores.NewTextMetered(store.TextStore, set)
	return &store, nil
}
