package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports debounced changes to a set of files.
//
// The parent directories are watched instead of the files themselves so that
// editors which save by rename keep triggering events.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration

	mu      sync.Mutex
	files   map[string]struct{}
	dirs    map[string]int
	timers  map[string]*time.Timer
	changes chan string
	closed  bool
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger *log.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	return &FileWatcher{
		watcher:  w,
		logger:   logger,
		debounce: debounce,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]int),
		timers:   make(map[string]*time.Timer),
		changes:  make(chan string, 16),
	}, nil
}

// Changes delivers absolute paths of watched files after they settle
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

// Watch replaces the watched set with files. Empty entries are skipped.
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	want := make(map[string]struct{}, len(files))
	for _, file := range files {
		if file == "" {
			continue
		}
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		want[absPath] = struct{}{}
	}

	for file := range fw.files {
		if _, keep := want[file]; !keep {
			fw.unwatchLocked(file)
		}
	}
	for file := range want {
		if _, have := fw.files[file]; have {
			continue
		}
		if err := fw.watchLocked(file); err != nil {
			return err
		}
	}
	return nil
}

func (fw *FileWatcher) watchLocked(file string) error {
	dir := filepath.Dir(file)
	if fw.dirs[dir] == 0 {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	fw.dirs[dir]++
	fw.files[file] = struct{}{}
	return nil
}

func (fw *FileWatcher) unwatchLocked(file string) {
	delete(fw.files, file)
	if timer, ok := fw.timers[file]; ok {
		timer.Stop()
		delete(fw.timers, file)
	}

	dir := filepath.Dir(file)
	fw.dirs[dir]--
	if fw.dirs[dir] <= 0 {
		delete(fw.dirs, dir)
		if err := fw.watcher.Remove(dir); err != nil {
			fw.logger.Debug("failed to stop watching directory", "dir", dir, "err", err)
		}
	}
}

// Watched returns the absolute paths currently watched
func (fw *FileWatcher) Watched() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	out := make([]string, 0, len(fw.files))
	for file := range fw.files {
		out = append(out, file)
	}
	return out
}

// Start pumps fsnotify events until ctx is done or the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				// Only trigger on write or create events
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleFileChange(filepath.Clean(event.Name))
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.logger.Warn("watcher error", "err", err)
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for a watched file
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, watched := fw.files[filePath]; !watched || fw.closed {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.emit(filePath)
	})
}

func (fw *FileWatcher) emit(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	delete(fw.timers, filePath)
	if fw.closed {
		return
	}
	select {
	case fw.changes <- filePath:
	default:
		fw.logger.Debug("change queue full, dropping event", "path", filePath)
	}
}

// Close stops the watcher and any pending timers
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return nil
	}
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	return fw.watcher.Close()
}
