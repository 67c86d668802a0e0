package content

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nsodat/vitrina/internal/checksum"
)

// EventCallback is called after a watcher-driven snapshot change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, sec Section)

// Watch starts an fsnotify watcher on the content directory and reloads
// changed documents until ctx is cancelled. Only the four registered
// document names are considered; everything else in the directory is
// ignored, including the temp files of atomic writes.
//
// Events are debounced for 200 ms so editor save bursts and rename
// sequences collapse into a single reload per section. cb (if non-nil)
// runs after each published change.
func Watch(ctx context.Context, holder *Holder, store *Store, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(store.Root()); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", store.Root()))

	// flushTimer debounces reloads; pending collects touched sections.
	pending := make(map[Section]struct{})
	var flushTimer *time.Timer
	var flushCh <-chan time.Time

	scheduleFlush := func() {
		if flushTimer == nil {
			flushTimer = time.NewTimer(200 * time.Millisecond)
			flushCh = flushTimer.C
		} else {
			flushTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if flushTimer != nil {
				flushTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-flushCh:
			for sec := range pending {
				delete(pending, sec)
				reloadSection(holder, sec, logger, cb)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			sec, known := SectionForFile(filepath.Base(ev.Name))
			if !known {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending[sec] = struct{}{}
			scheduleFlush()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// reloadSection republishes one section and reports what happened. A
// document that vanished or no longer decodes surfaces as "deleted";
// an unchanged checksum is suppressed entirely.
func reloadSection(holder *Holder, sec Section, logger *slog.Logger, cb EventCallback) {
	prev := holder.Current()
	prevSum, hadBefore := prev.Checksums[sec]

	next := holder.Reload(sec)
	sum, hasNow := next.Checksums[sec]

	var kind string
	switch {
	case hasNow && !hadBefore:
		kind = "created"
	case hasNow:
		if sum == prevSum {
			return
		}
		kind = "updated"
	case hadBefore:
		kind = "deleted"
	default:
		return
	}

	logger.Debug("watcher: section reloaded",
		slog.String("section", string(sec)),
		slog.String("op", kind),
		slog.String("rev", checksum.Short(sum)))
	if cb != nil {
		cb(kind, sec)
	}
}
