package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

// Watch reloads the parameter file at path whenever it is written or
// replaced and passes the result to onChange. Invalid files are logged and
// skipped. It returns when ctx is done.
//
// The parent directory is watched rather than the file, so saves that
// rename a new file over path keep being seen.
func Watch(ctx context.Context, path string, onChange func(*parameters.Parameters)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.WithField("path", path).Info("Watching parameters")

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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			p, err := Load(path)
			if err != nil {
				log.WithError(err).WithField("path", path).Error("Reload failed, keeping previous parameters")
				continue
			}
			log.WithField("path", path).Info("Parameters reloaded")
			onChange(p)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Error("Watcher error")
		}
	}
}
