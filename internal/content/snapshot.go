package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nsodat/vitrina/internal/checksum"
)

// Snapshot is one immutable view of all four documents. An empty slot
// (nil slice, nil or zero thesis) means the document was absent or
// unreadable; its page region is simply not rendered. Snapshots are
// read-only once published; updates build a fresh one and swap it in.
type Snapshot struct {
	Modules     []Module
	Thesis      *Thesis
	Courseworks []Coursework
	Practicals  []Practical
	Checksums   map[Section]string
	LoadedAt    time.Time
}

// LoadSnapshot reads all four documents concurrently. A document that is
// missing, unreadable, or malformed leaves its slot empty and never
// disturbs the other three; failures are logged, not returned.
func LoadSnapshot(ctx context.Context, store *Store, log *slog.Logger) *Snapshot {
	snap := &Snapshot{
		Checksums: make(map[Section]string, 4),
		LoadedAt:  time.Now(),
	}
	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	for _, sec := range Sections() {
		g.Go(func() error {
			loadSection(snap, &mu, store, sec, log)
			return nil
		})
	}
	// Loaders contain their own failures.
	_ = g.Wait()
	return snap
}

// loadSection fills one slot of snap. The caller guarantees no other
// goroutine touches the same slot; mu guards the shared checksum map.
func loadSection(snap *Snapshot, mu *sync.Mutex, store *Store, sec Section, log *slog.Logger) {
	data, err := store.Read(sec)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("document absent", slog.String("section", string(sec)))
		} else {
			log.Warn("document unreadable, section left empty",
				slog.String("section", string(sec)),
				slog.String("error", err.Error()))
		}
		return
	}
	if err := snap.decode(sec, data); err != nil {
		log.Warn("document malformed, section left empty",
			slog.String("section", string(sec)),
			slog.String("error", err.Error()))
		return
	}
	mu.Lock()
	snap.Checksums[sec] = checksum.Sum(data)
	mu.Unlock()
}

func (s *Snapshot) decode(sec Section, data []byte) error {
	switch sec {
	case SectionModules:
		var v []Module
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		s.Modules = v
	case SectionThesis:
		var v Thesis
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		s.Thesis = &v
	case SectionCourseworks:
		var v []Coursework
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		s.Courseworks = v
	case SectionPracticals:
		var v []Practical
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		s.Practicals = v
	}
	return nil
}

// clear empties one slot before a reload so a document that turned
// invalid does not keep serving stale content.
func (s *Snapshot) clear(sec Section) {
	switch sec {
	case SectionModules:
		s.Modules = nil
	case SectionThesis:
		s.Thesis = nil
	case SectionCourseworks:
		s.Courseworks = nil
	case SectionPracticals:
		s.Practicals = nil
	}
	delete(s.Checksums, sec)
}

// clone copies the snapshot so a reload can swap slots without mutating
// the published one. Slices are shared; snapshots are read-only.
func (s *Snapshot) clone() *Snapshot {
	next := *s
	next.Checksums = make(map[Section]string, len(s.Checksums))
	for k, v := range s.Checksums {
		next.Checksums[k] = v
	}
	return &next
}

// Empty reports whether the section's slot holds no renderable content.
func (s *Snapshot) Empty(sec Section) bool {
	switch sec {
	case SectionModules:
		return len(s.Modules) == 0
	case SectionThesis:
		return s.Thesis.IsZero()
	case SectionCourseworks:
		return len(s.Courseworks) == 0
	case SectionPracticals:
		return len(s.Practicals) == 0
	}
	return true
}

// Doc returns the typed document held in the section's slot.
func (s *Snapshot) Doc(sec Section) any {
	switch sec {
	case SectionModules:
		return s.Modules
	case SectionThesis:
		return s.Thesis
	case SectionCourseworks:
		return s.Courseworks
	case SectionPracticals:
		return s.Practicals
	}
	return nil
}

// Stats derives the hero counter targets from the loaded content.
func (s *Snapshot) Stats() Stats {
	st := Stats{
		Modules:     len(s.Modules),
		Courseworks: len(s.Courseworks),
		Practicals:  len(s.Practicals),
	}
	for _, m := range s.Modules {
		st.Semesters += len(m.Semesters)
		for _, sem := range m.Semesters {
			st.Labs += len(sem.Labs)
		}
	}
	return st
}
