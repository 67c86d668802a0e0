// Package web implements the portfolio HTTP surface: the rendered page,
// the raw document paths the page's static copy fetches, the management
// API and the section fragments.
package web

import (
	"context"
	"fmt"

	"github.com/nsodat/vitrina/internal/apperr"
	"github.com/nsodat/vitrina/internal/checksum"
	"github.com/nsodat/vitrina/internal/content"
	"github.com/nsodat/vitrina/internal/render"
	"github.com/nsodat/vitrina/internal/sse"
	"github.com/nsodat/vitrina/internal/ui"
)

// Publisher pushes the site repository to its remote.
type Publisher interface {
	Publish(ctx context.Context, message string) (string, error)
}

// Service coordinates snapshot reads, document writes and publishing
// for the HTTP layer.
type Service struct {
	store     *content.Store
	holder    *content.Holder
	renderer  *render.Renderer
	broker    *sse.Broker
	publisher Publisher
	site      render.Site
}

// NewService creates a web service. publisher may be nil when
// publishing is not configured.
func NewService(store *content.Store, holder *content.Holder, renderer *render.Renderer, broker *sse.Broker, publisher Publisher, site render.Site) *Service {
	return &Service{
		store:     store,
		holder:    holder,
		renderer:  renderer,
		broker:    broker,
		publisher: publisher,
		site:      site,
	}
}

// Page renders the full portfolio page from the current snapshot.
func (s *Service) Page(_ context.Context) ([]byte, error) {
	return s.renderer.Page(s.site, s.holder.Current())
}

// Sections describes all four documents and their current state.
func (s *Service) Sections(_ context.Context) []SectionInfo {
	snap := s.holder.Current()
	infos := make([]SectionInfo, 0, 4)
	for _, sec := range content.Sections() {
		infos = append(infos, SectionInfo{
			Section:   string(sec),
			File:      sec.File(),
			Singleton: sec.Singleton(),
			Checksum:  snap.Checksums[sec],
			Empty:     snap.Empty(sec),
		})
	}
	return infos
}

// GetSection returns the typed document for one section. A section that
// is absent or failed to load reports ErrNotFound.
func (s *Service) GetSection(_ context.Context, key string) (*SectionPayload, error) {
	sec, ok := content.ParseSection(key)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	snap := s.holder.Current()
	sum, loaded := snap.Checksums[sec]
	if !loaded {
		return nil, apperr.ErrNotFound
	}
	return &SectionPayload{
		Section:  string(sec),
		Checksum: sum,
		Data:     snap.Doc(sec),
	}, nil
}

// UpdateSection replaces a whole section document with optimistic
// concurrency. body must be the document itself; its shape is checked
// by a typed decode before anything is written. The snapshot reload
// that follows leaves the watcher's own pass checksum-suppressed.
func (s *Service) UpdateSection(_ context.Context, key string, body []byte, ifMatch string) (*SectionPayload, error) {
	sec, ok := content.ParseSection(key)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	doc, err := content.DecodeDocument(sec, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	prev := s.holder.Current()
	prevSum, existed := prev.Checksums[sec]
	if ifMatch != "" && ifMatch != prevSum {
		return nil, apperr.ErrConflict
	}

	if err := s.store.WriteDoc(sec, doc); err != nil {
		return nil, err
	}
	snap := s.holder.Reload(sec)

	if s.broker != nil {
		kind := "updated"
		if !existed {
			kind = "created"
		}
		s.broker.PublishSectionEvent(kind, string(sec))
	}

	return &SectionPayload{
		Section:  string(sec),
		Checksum: snap.Checksums[sec],
		Data:     snap.Doc(sec),
	}, nil
}

// Stats returns the hero counter targets for the current snapshot.
func (s *Service) Stats(_ context.Context) content.Stats {
	return s.holder.Current().Stats()
}

// Fragment renders the inner markup of one section container. ok is
// false when the section has nothing to show.
func (s *Service) Fragment(key string) (string, bool, error) {
	sec, known := content.ParseSection(key)
	if !known {
		return "", false, apperr.ErrNotFound
	}
	html, ok := s.renderer.Section(sec, s.holder.Current())
	return string(html), ok, nil
}

// ModuleFragment renders one module card in an explicit collapse state.
func (s *Service) ModuleFragment(index int, state ui.CollapseState) (string, error) {
	mods := s.holder.Current().Modules
	if index < 0 || index >= len(mods) {
		return "", apperr.ErrNotFound
	}
	html, err := s.renderer.ModuleCard(mods[index], index, state)
	if err != nil {
		return "", err
	}
	return string(html), nil
}

// RawDocument returns the stored bytes and checksum of the document
// behind the given file name, for the page's well-known data paths.
func (s *Service) RawDocument(file string) ([]byte, string, error) {
	sec, ok := content.SectionForFile(file)
	if !ok {
		return nil, "", apperr.ErrNotFound
	}
	data, err := s.store.Read(sec)
	if err != nil {
		return nil, "", apperr.ErrNotFound
	}
	return data, checksum.Sum(data), nil
}

// PublishSite commits and pushes the site repository.
func (s *Service) PublishSite(ctx context.Context, message string) (string, error) {
	if s.publisher == nil {
		return "", apperr.ErrUnavailable
	}
	return s.publisher.Publish(ctx, message)
}
