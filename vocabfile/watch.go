package vocabfile

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/appengine-ltd/storyparse/parser"
)

// Watch reloads path whenever it is written and delivers each good
// config to onChange. Load failures (mid-save partial writes, syntax
// errors) go to onError when set and are otherwise dropped; the last
// good config stays in effect either way. Watch blocks until ctx is
// cancelled.
func Watch(ctx context.Context, path string, onChange func(parser.VocabConfig), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that save via rename
	// would otherwise detach the watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	report := func(err error) {
		if onError != nil {
			onError(err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				report(err)
				continue
			}
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			report(err)
		}
	}
}
