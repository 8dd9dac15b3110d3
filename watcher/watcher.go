// Package watcher feeds newly created files in designated folders into a
// bounded queue consumed by a small worker pool, so a burst of arrivals
// never fans out into unbounded concurrent extraction calls.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Handler processes one document path.
type Handler func(ctx context.Context, path string)

type Watcher struct {
	options Options
	fsw     *fsnotify.Watcher
	queue   chan string
	handler Handler
	wg      sync.WaitGroup
}

// Watch registers the directories (creating them if needed), starts the
// worker pool, and blocks dispatching create events until ctx is done.
func (w *Watcher) Watch(ctx context.Context, dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create watch dir %s: %w", dir, err)
		}
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		slog.InfoContext(ctx, "watching folder", "dir", dir)
	}

	for range w.options.Workers {
		w.wg.Add(1)
		go w.work(ctx)
	}

	defer func() {
		close(w.queue)
		w.wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || info.IsDir() {
				continue
			}
			select {
			case w.queue <- event.Name:
				slog.InfoContext(ctx, "new file detected", "path", event.Name)
			default:
				slog.WarnContext(ctx, "watch queue full, dropping file", "path", event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.ErrorContext(ctx, "watch error", "error", err)
		}
	}
}

func (w *Watcher) work(ctx context.Context) {
	defer w.wg.Done()

	for path := range w.queue {
		w.handler(ctx, path)
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func NewWatcher(handler Handler, opts ...Option) (*Watcher, error) {
	options := NewOptions(opts...)

	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		options: options,
		fsw:     fsw,
		queue:   make(chan string, options.QueueSize),
		handler: handler,
	}

	return w, nil
}
