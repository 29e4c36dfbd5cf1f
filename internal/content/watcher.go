package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/elifdikmn/elif-dev/internal/logging"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a content file into a Store whenever it changes on disk.
type Watcher struct {
	path     string
	store    *Store
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Site)
	logger   *logrus.Entry

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches path. The parent directory is watched rather than the
// file itself so editors that save by rename are still seen. onReload runs
// after each successful reload and may be nil.
func NewWatcher(path string, store *Store, onReload func(*Site)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		path:     abs,
		store:    store,
		watcher:  fw,
		debounce: defaultDebounce,
		onReload: onReload,
		logger:   logging.NewLogger("content-watcher"),
	}, nil
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Error("watcher error")
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return
		}
	}
}

// schedule coalesces a burst of writes into one reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	site, err := Load(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("content reload failed, keeping previous content")
		return
	}
	w.store.Set(site)
	w.logger.Infof("content reloaded from %s", filepath.Base(w.path))
	if w.onReload != nil {
		w.onReload(site)
	}
}
