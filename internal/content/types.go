// Package content owns the four portfolio documents: their domain types,
// the on-disk store, and the immutable snapshot the page is rendered from.
package content

// Section identifies one of the four portfolio documents.
type Section string

const (
	SectionModules     Section = "modules"
	SectionThesis      Section = "thesis"
	SectionCourseworks Section = "courseworks"
	SectionPracticals  Section = "practicals"
)

// Sections returns all sections in page order.
func Sections() []Section {
	return []Section{SectionModules, SectionThesis, SectionCourseworks, SectionPracticals}
}

// File returns the on-disk document name for the section, or "" for an
// unknown section.
func (s Section) File() string {
	switch s {
	case SectionModules:
		return "education_modules.json"
	case SectionThesis:
		return "thesis.json"
	case SectionCourseworks:
		return "courseworks.json"
	case SectionPracticals:
		return "practical_works.json"
	}
	return ""
}

// Singleton reports whether the section holds a single object rather than
// a list. Only the thesis is a singleton.
func (s Section) Singleton() bool {
	return s == SectionThesis
}

// ParseSection maps a section key from a URL or tool argument.
func ParseSection(key string) (Section, bool) {
	s := Section(key)
	return s, s.File() != ""
}

// SectionForFile maps a document file name back to its section. Used by
// the watcher to ignore unrelated files in the content directory.
func SectionForFile(name string) (Section, bool) {
	for _, s := range Sections() {
		if s.File() == name {
			return s, true
		}
	}
	return "", false
}

// Lab is a single laboratory work inside a semester.
type Lab struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
}

// Semester groups the labs of one term inside a module.
type Semester struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Labs  []Lab  `json:"labs"`
}

// Module is one collapsible education module card.
type Module struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Semesters []Semester `json:"semesters"`
}

// Thesis is the singleton thesis document.
type Thesis struct {
	Title        string   `json:"title"`
	Topic        string   `json:"topic"`
	Description  string   `json:"description,omitempty"`
	PreviewImage string   `json:"previewImage,omitempty"`
	Link         string   `json:"link,omitempty"`
	KeyFeatures  []string `json:"keyFeatures,omitempty"`
}

// IsZero reports whether the thesis carries no content. A zero thesis is
// treated like an absent document and is not rendered.
func (t *Thesis) IsZero() bool {
	return t == nil || (t.Title == "" && t.Topic == "" && t.Description == "" && len(t.KeyFeatures) == 0)
}

// Coursework is one term-paper entry.
type Coursework struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Semester     string   `json:"semester,omitempty"`
	Description  string   `json:"description,omitempty"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Practical is one practical-works entry.
type Practical struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Semester    string   `json:"semester,omitempty"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Items       []string `json:"items,omitempty"`
}

// Stats are the counter targets shown in the hero section.
type Stats struct {
	Modules     int `json:"modules"`
	Semesters   int `json:"semesters"`
	Labs        int `json:"labs"`
	Courseworks int `json:"courseworks"`
	Practicals  int `json:"practicals"`
}
