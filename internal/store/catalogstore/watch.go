package catalogstore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/idilsaglam/lunar/internal/content"
)

// Update is delivered by a Watcher each time the file changes. Err is set
// when the new contents could not be loaded; the previous catalog stays valid.
type Update struct {
	Catalog content.Catalog
	Err     error
}

// Watcher reloads a catalog file when it changes on disk.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan Update
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching path. The directory is watched rather than the file
// so editors that replace the file on save are still seen.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan Update, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop(ctx)
	return w, nil
}

// Updates is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Update { return w.updates }

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.updates)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			c, err := Load(w.path)
			w.send(ctx, Update{Catalog: c, Err: err})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(ctx, Update{Err: err})
		}
	}
}

// send keeps only the newest pending update.
func (w *Watcher) send(ctx context.Context, u Update) {
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- u:
	case <-ctx.Done():
	case <-w.done:
	}
}
