// Package render produces the portfolio page and its section fragments
// from a content snapshot. Markup lives in package-level template
// constants; all text passes through html/template escaping.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/nsodat/vitrina/internal/content"
	"github.com/nsodat/vitrina/internal/ui"
)

// Site is the page-level metadata shown in the navbar, hero and footer.
type Site struct {
	Title       string
	Owner       string
	Description string
}

// Renderer holds the parsed template sets.
type Renderer struct {
	page     *template.Template
	sections *template.Template
}

// New parses the page and section templates.
func New() (*Renderer, error) {
	sections, err := template.New("sections").Parse(sectionTemplates)
	if err != nil {
		return nil, fmt.Errorf("render: parse section templates: %w", err)
	}
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("render: parse page template: %w", err)
	}
	return &Renderer{page: page, sections: sections}, nil
}

type labView struct {
	Title string
	Link  string
}

type semesterView struct {
	ID    string
	Title string
	Labs  []labView
}

type moduleCard struct {
	Index     int
	ID        string
	ContentID string
	Title     string
	Expanded  bool
	Angle     int
	Semesters []semesterView
}

type workCard struct {
	Index int
	ID    string
	content.Coursework
}

type practicalCard struct {
	Index int
	ID    string
	content.Practical
}

func newModuleCard(m content.Module, i int, state ui.CollapseState) moduleCard {
	card := moduleCard{
		Index:     i,
		ID:        fmt.Sprintf("module-%d", i),
		ContentID: fmt.Sprintf("module-content-%d", i),
		Title:     m.Title,
		Expanded:  state == ui.Expanded,
		Angle:     state.IndicatorAngle(),
	}
	for j, sem := range m.Semesters {
		sv := semesterView{
			ID:    fmt.Sprintf("module-%d-semester-%d", i, j),
			Title: sem.Title,
		}
		for _, lab := range sem.Labs {
			sv.Labs = append(sv.Labs, labView{Title: lab.Title, Link: lab.Link})
		}
		card.Semesters = append(card.Semesters, sv)
	}
	return card
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.sections.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render: %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Modules renders the education module cards, all collapsed, in source
// order. ok is false when there is nothing to render.
func (r *Renderer) Modules(mods []content.Module) (template.HTML, bool) {
	if len(mods) == 0 {
		return "", false
	}
	cards := make([]moduleCard, len(mods))
	for i, m := range mods {
		cards[i] = newModuleCard(m, i, ui.Collapsed)
	}
	out, err := r.exec("modules", cards)
	if err != nil {
		return "", false
	}
	return out, true
}

// ModuleCard renders one module card in an explicit collapse state.
func (r *Renderer) ModuleCard(m content.Module, index int, state ui.CollapseState) (template.HTML, error) {
	return r.exec("moduleCard", newModuleCard(m, index, state))
}

// Thesis renders the thesis card. A nil or zero thesis renders nothing.
func (r *Renderer) Thesis(t *content.Thesis) (template.HTML, bool) {
	if t.IsZero() {
		return "", false
	}
	out, err := r.exec("thesis", t)
	if err != nil {
		return "", false
	}
	return out, true
}

// Courseworks renders the coursework cards in source order.
func (r *Renderer) Courseworks(cs []content.Coursework) (template.HTML, bool) {
	if len(cs) == 0 {
		return "", false
	}
	cards := make([]workCard, len(cs))
	for i, c := range cs {
		cards[i] = workCard{Index: i, ID: fmt.Sprintf("coursework-%d", i), Coursework: c}
	}
	out, err := r.exec("courseworks", cards)
	if err != nil {
		return "", false
	}
	return out, true
}

// Practicals renders the practical-works cards in source order.
func (r *Renderer) Practicals(ps []content.Practical) (template.HTML, bool) {
	if len(ps) == 0 {
		return "", false
	}
	cards := make([]practicalCard, len(ps))
	for i, p := range ps {
		cards[i] = practicalCard{Index: i, ID: fmt.Sprintf("practical-%d", i), Practical: p}
	}
	out, err := r.exec("practicals", cards)
	if err != nil {
		return "", false
	}
	return out, true
}

// Section renders the fragment for one section of the snapshot.
func (r *Renderer) Section(sec content.Section, snap *content.Snapshot) (template.HTML, bool) {
	switch sec {
	case content.SectionModules:
		return r.Modules(snap.Modules)
	case content.SectionThesis:
		return r.Thesis(snap.Thesis)
	case content.SectionCourseworks:
		return r.Courseworks(snap.Courseworks)
	case content.SectionPracticals:
		return r.Practicals(snap.Practicals)
	}
	return "", false
}

type statView struct {
	Label  string
	Target int
}

type pageView struct {
	Site        Site
	Year        int
	Stats       []statView
	Education   template.HTML
	Thesis      template.HTML
	Courseworks template.HTML
	Practicals  template.HTML

	NavbarThreshold    int
	BackToTopThreshold int
	ScrollProbe        int
}

// Page renders the whole portfolio page. Empty sections leave their
// containers childless.
func (r *Renderer) Page(site Site, snap *content.Snapshot) ([]byte, error) {
	view := pageView{
		Site:               site,
		Year:               time.Now().Year(),
		Stats:              statViews(snap.Stats()),
		NavbarThreshold:    ui.NavbarThreshold,
		BackToTopThreshold: ui.BackToTopThreshold,
		ScrollProbe:        ui.ScrollProbe,
	}
	view.Education, _ = r.Modules(snap.Modules)
	view.Thesis, _ = r.Thesis(snap.Thesis)
	view.Courseworks, _ = r.Courseworks(snap.Courseworks)
	view.Practicals, _ = r.Practicals(snap.Practicals)

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render: page: %w", err)
	}
	return buf.Bytes(), nil
}

func statViews(st content.Stats) []statView {
	return []statView{
		{Label: "Модулей", Target: st.Modules},
		{Label: "Лабораторных", Target: st.Labs},
		{Label: "Курсовых", Target: st.Courseworks},
		{Label: "Практических", Target: st.Practicals},
	}
}
