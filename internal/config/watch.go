package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/iwvelando/supervision-roi/internal/roi"
	"go.uber.org/zap"
)

// WatchPricing monitors the configuration file at path and calls onChange
// with the reloaded price table every time the file is written or replaced.
// It runs until ctx is cancelled. A reload that fails to parse is logged and
// the previous pricing stays in effect.
//
// The parent directory is watched rather than the file so that saves which
// rename a temporary file over path keep being observed.
func WatchPricing(ctx context.Context, path string, logger *zap.Logger, onChange func(roi.PriceTable)) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("pricing file %s: %w", path, err)
	}

	target := filepath.Clean(path)

	// Seed from the current file so a truncated write cannot restore defaults.
	configured := false
	if conf, err := LoadConfiguration(path); err == nil {
		configured = len(conf.PriceTable()) > 0
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger.Info("watching pricing for changes",
		zap.String("op", "config.WatchPricing"),
		zap.String("path", path),
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// Rename and Remove leave nothing to read; the Create that
			// follows an atomic save triggers the reload.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			conf, err := LoadConfiguration(path)
			if err != nil {
				logger.Error("pricing reload failed, keeping previous pricing",
					zap.String("op", "config.WatchPricing"),
					zap.String("path", path),
					zap.Error(err),
				)
				continue
			}

			table := conf.PriceTable()
			if len(table) == 0 && configured {
				logger.Debug("pricing section empty, keeping previous pricing",
					zap.String("op", "config.WatchPricing"),
					zap.String("path", path),
				)
				continue
			}
			configured = len(table) > 0

			logger.Info("pricing reloaded",
				zap.String("op", "config.WatchPricing"),
				zap.String("path", path),
			)
			onChange(table)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("pricing watcher error",
				zap.String("op", "config.WatchPricing"),
				zap.Error(err),
			)
		}
	}
}
