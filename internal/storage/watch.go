package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange whenever a JSON document under the store's paths is
// written, created, removed or renamed by anyone. It stops when ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func(path string)) error {
	if err := os.MkdirAll(s.data_dir, 0o755); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := []string{s.data_dir}
	if meta_dir := filepath.Dir(s.meta_path); filepath.Clean(meta_dir) != filepath.Clean(s.data_dir) {
		dirs = append(dirs, meta_dir)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return err
		}
	}

	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Ext(event.Name) != ".json" {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					slog.DebugContext(ctx, "data file changed", "path", event.Name, "op", event.Op.String())
					onChange(event.Name)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "Error watching data directory", "err", err)
			}
		}
	}()
	return nil
}
