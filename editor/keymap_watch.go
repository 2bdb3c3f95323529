package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchKeyMap reloads the keymap file at path whenever it changes and hands
// the result to onChange. It watches the parent directory so editors that
// replace the file by rename are seen.
//
// The watch runs on its own goroutine until ctx is done. onChange is called
// from that goroutine.
func WatchKeyMap(ctx context.Context, path string, onChange func(KeyMap, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("editor: watch keymap: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("editor: watch keymap: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("editor: watch keymap: %w", err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				km, err := LoadKeyMap(abs)
				onChange(km, err)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				onChange(KeyMap{}, fmt.Errorf("editor: watch keymap: %w", err))
			}
		}
	}()
	return nil
}
