package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const rebuildDebounce = 300 * time.Millisecond

// Watch builds the site once, then rebuilds it whenever a file under
// the input directory changes. Rapid change bursts collapse into one
// rebuild. A failed rebuild is logged and watching continues; Watch
// returns when ctx is cancelled.
func (b *Builder) Watch(ctx context.Context, inputDir, outputDir string) error {
	if err := b.Build(ctx, inputDir, outputDir); err != nil {
		b.logger.Error("initial build failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := addDirsRecursive(watcher, inputDir); err != nil {
		return err
	}
	b.logger.Info("watching for changes", "dir", inputDir)

	rebuildReq := make(chan struct{}, 1)
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(rebuildDebounce, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoreEvent(ev.Name) {
				continue
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name)
				}
			}
			b.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.logger.Warn("watcher error", "error", err)
		case <-rebuildReq:
			b.logger.Info("rebuilding site", "dir", inputDir)
			if err := b.Build(ctx, inputDir, outputDir); err != nil {
				b.logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// ignoreEvent filters out hidden files and editor temp/swap files so
// they never trigger rebuilds.
func ignoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") {
		return true
	}
	return base == "Thumbs.db"
}
