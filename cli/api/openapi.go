package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"

	"github.com/oaiiae/contacts-api/contacts"
	"github.com/oaiiae/contacts-api/datastores"
)

// WriteOpenAPI writes the OpenAPI document of the router as YAML.
// The operations are served by an in-memory collection, so no storage
// backend is opened and nothing is logged.
func WriteOpenAPI(w io.Writer, options *RouterOptions, build Build) error {
	logger := slog.New(slog.DiscardHandler)
	service := contacts.NewService(context.Background(), datastores.NewTextInmem(), contacts.DefaultName, logger)

	var api huma.API
	NewRouter(options, build, service, nil, metrics.NewSet(), logger, &api)

	b, err := api.OpenAPI().YAML()
	if err != nil {
		return fmt.Errorf("render openapi: %w", err)
	}
	_, err = w.Write(b)
	return err
}
