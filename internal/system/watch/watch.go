// Released under an MIT license. See LICENSE.

// Package watch reruns a program whenever its source file changes.
package watch

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long to wait for a burst of events to end before rereading.
const Settle = 10 * time.Millisecond

// Run calls f with the contents of path and then again after every change
// to path. It stops when f returns true or ctx is done.
func Run(ctx context.Context, path string, log *slog.Logger, f func(src string) bool) error {
	if reread(path, log, f) {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Warn("watch", slog.String("path", path), slog.Any("err", err))

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) {
				continue
			}

			drain(watcher.Events)

			log.Info("reload", slog.String("path", path), slog.String("op", ev.Op.String()))

			if reread(path, log, f) {
				return nil
			}

			// Editors often replace the file rather than writing to it.
			_ = watcher.Add(path)
		}
	}
}

func drain(events <-chan fsnotify.Event) {
	for {
		time.Sleep(Settle)

		select {
		case <-events:
		default:
			return
		}
	}
}

func reread(path string, log *slog.Logger, f func(src string) bool) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn("read", slog.String("path", path), slog.Any("err", err))
		return false
	}

	return f(string(b))
}
