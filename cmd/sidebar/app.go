package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/sidebar/pkg/config"
	"github.com/mchmarny/sidebar/pkg/content"
	"github.com/mchmarny/sidebar/pkg/contenttype"
	"github.com/mchmarny/sidebar/pkg/i18n"
	"github.com/mchmarny/sidebar/pkg/menu"
	"github.com/mchmarny/sidebar/pkg/metric"
	"github.com/mchmarny/sidebar/pkg/routing"
)

// app holds the wired collaborators of the sidebar.
type app struct {
	builder  *menu.Builder
	store    *content.SQLiteStore
	registry *prometheus.Registry
}

// newApp wires the sidebar from cfg. Callers must call close.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	types, err := contenttype.LoadFile(cfg.ContentTypesFile)
	if err != nil {
		return nil, err
	}

	var tr *i18n.Catalog
	if cfg.TranslationsDir != "" {
		tr, err = i18n.LoadDir(cfg.TranslationsDir, cfg.Locale)
	} else {
		tr, err = i18n.Embedded(cfg.Locale)
	}
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	store, err := content.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if cfg.FixturesFile != "" {
		n, err := content.LoadFixtures(ctx, store, cfg.FixturesFile)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		logger.Info("fixtures loaded", "file", cfg.FixturesFile, "records", n)
	}

	links := routing.Default(cfg.RoutePrefix)
	registry := prometheus.NewRegistry()

	builder := menu.NewBuilder(
		types,
		links,
		tr,
		content.NewService(store, types, links),
		menu.WithLogger(logger),
		menu.WithStopwatch(metric.NewStopwatchWithRegistry(registry,
			"sidebar_span_duration_seconds", "Duration of sidebar build steps.")),
	)

	logger.Debug("sidebar wired",
		"content_types", types.Len(),
		"locale", tr.Locale().String(),
		"db", cfg.DBPath)

	return &app{
		builder:  builder,
		store:    store,
		registry: registry,
	}, nil
}

func (a *app) close() error {
	return a.store.Close()
}
