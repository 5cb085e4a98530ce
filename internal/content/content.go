// Package content holds the study catalog: lessons, road signs, quiz
// questions, and the Italian-Arabic glossary. The catalog is seeded with a
// built-in set and can be replaced or extended via JSON import.
package content

import (
	"fmt"
	"sort"
	"sync"
)

// SignCategory classifies a road sign by regulatory function.
type SignCategory string

const (
	SignWarning     SignCategory = "warning"
	SignProhibition SignCategory = "prohibition"
	SignObligation  SignCategory = "obligation"
	SignInformation SignCategory = "information"
)

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Section groups lessons under a themed heading.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Order int    `json:"order"`
}

// Lesson is a single study unit with Arabic body text and the Italian term
// it teaches.
type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleIt   string `json:"titleIt"`
	Category  string `json:"category"`
	SectionID string `json:"sectionId"`
	Content   string `json:"content"`
	Example   string `json:"example"`
	Order     int    `json:"order"`
}

// Sign is a road sign with its Italian name and an Arabic description.
type Sign struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	NameIt      string       `json:"nameIt"`
	Category    SignCategory `json:"category"`
	Description string       `json:"description"`
	RealExample string       `json:"realExample"`
	ImageURL    string       `json:"imageUrl,omitempty"`
}

// Question is a true/false theory question. TextIt carries the official
// Italian phrasing; TextAr is the Arabic translation shown alongside it.
type Question struct {
	ID          string     `json:"id"`
	TextIt      string     `json:"textIt"`
	TextAr      string     `json:"textAr"`
	Answer      bool       `json:"answer"`
	Explanation string     `json:"explanation"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	SignID      string     `json:"signId,omitempty"`
	LessonID    string     `json:"lessonId,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// GlossaryItem maps an Italian driving term to its Arabic translation.
type GlossaryItem struct {
	ID       string `json:"id"`
	TermIt   string `json:"termIt"`
	TermAr   string `json:"termAr"`
	Example  string `json:"example"`
	Category string `json:"category"`
}

// Catalog is the full content set, the unit of import and export.
type Catalog struct {
	Sections  []Section      `json:"sections"`
	Lessons   []Lesson       `json:"lessons"`
	Signs     []Sign         `json:"signs"`
	Questions []Question     `json:"questions"`
	Glossary  []GlossaryItem `json:"glossary"`
}

// Repository provides indexed, read-mostly access to a Catalog.
// Safe for concurrent use.
type Repository struct {
	mu       sync.RWMutex
	catalog  Catalog
	byQID    map[string]*Question
	byLID    map[string]*Lesson
	bySignID map[string]*Sign
}

// NewRepository builds a repository over the given catalog.
func NewRepository(c Catalog) *Repository {
	r := &Repository{}
	r.replace(c)
	return r
}

// NewDefaultRepository builds a repository over the built-in catalog.
func NewDefaultRepository() *Repository {
	return NewRepository(DefaultCatalog())
}

func (r *Repository) replace(c Catalog) {
	sort.SliceStable(c.Sections, func(i, j int) bool { return c.Sections[i].Order < c.Sections[j].Order })
	sort.SliceStable(c.Lessons, func(i, j int) bool { return c.Lessons[i].Order < c.Lessons[j].Order })

	r.catalog = c
	r.byQID = make(map[string]*Question, len(c.Questions))
	for i := range r.catalog.Questions {
		r.byQID[r.catalog.Questions[i].ID] = &r.catalog.Questions[i]
	}
	r.byLID = make(map[string]*Lesson, len(c.Lessons))
	for i := range r.catalog.Lessons {
		r.byLID[r.catalog.Lessons[i].ID] = &r.catalog.Lessons[i]
	}
	r.bySignID = make(map[string]*Sign, len(c.Signs))
	for i := range r.catalog.Signs {
		r.bySignID[r.catalog.Signs[i].ID] = &r.catalog.Signs[i]
	}
}

// Replace swaps the entire catalog, as used by import.
func (r *Repository) Replace(c Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replace(c)
}

// Catalog returns a copy of the current catalog.
func (r *Repository) Catalog() Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := Catalog{
		Sections:  append([]Section(nil), r.catalog.Sections...),
		Lessons:   append([]Lesson(nil), r.catalog.Lessons...),
		Signs:     append([]Sign(nil), r.catalog.Signs...),
		Questions: append([]Question(nil), r.catalog.Questions...),
		Glossary:  append([]GlossaryItem(nil), r.catalog.Glossary...),
	}
	return c
}

// Questions returns all questions in catalog order.
func (r *Repository) Questions() []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Question(nil), r.catalog.Questions...)
}

// QuestionByID looks up a question.
func (r *Repository) QuestionByID(id string) (Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byQID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// QuestionsByIDs resolves ids against the catalog, skipping unknown ones.
func (r *Repository) QuestionsByIDs(ids []string) []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := r.byQID[id]; ok {
			out = append(out, *q)
		}
	}
	return out
}

// QuestionsForLesson returns the questions tied to a lesson.
func (r *Repository) QuestionsForLesson(lessonID string) []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Question
	for _, q := range r.catalog.Questions {
		if q.LessonID == lessonID {
			out = append(out, q)
		}
	}
	return out
}

// Lessons returns all lessons ordered by their Order field.
func (r *Repository) Lessons() []Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Lesson(nil), r.catalog.Lessons...)
}

// LessonByID looks up a lesson.
func (r *Repository) LessonByID(id string) (Lesson, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byLID[id]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// LessonCount reports the total number of lessons.
func (r *Repository) LessonCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.catalog.Lessons)
}

// Sections returns all sections ordered by their Order field.
func (r *Repository) Sections() []Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Section(nil), r.catalog.Sections...)
}

// Signs returns all signs in catalog order.
func (r *Repository) Signs() []Sign {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Sign(nil), r.catalog.Signs...)
}

// SignByID looks up a sign.
func (r *Repository) SignByID(id string) (Sign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.bySignID[id]
	if !ok {
		return Sign{}, false
	}
	return *s, true
}

// Glossary returns all glossary items.
func (r *Repository) Glossary() []GlossaryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]GlossaryItem(nil), r.catalog.Glossary...)
}

// Validate checks catalog referential integrity: unique IDs and resolvable
// lesson, sign, and section references.
func (c Catalog) Validate() error {
	qids := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if qids[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		qids[q.ID] = true
	}

	lids := make(map[string]bool, len(c.Lessons))
	for _, l := range c.Lessons {
		if l.ID == "" {
			return fmt.Errorf("lesson with empty id")
		}
		if lids[l.ID] {
			return fmt.Errorf("duplicate lesson id %q", l.ID)
		}
		lids[l.ID] = true
	}

	sids := make(map[string]bool, len(c.Signs))
	for _, s := range c.Signs {
		if sids[s.ID] {
			return fmt.Errorf("duplicate sign id %q", s.ID)
		}
		sids[s.ID] = true
	}

	secs := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		secs[s.ID] = true
	}

	for _, q := range c.Questions {
		if q.LessonID != "" && !lids[q.LessonID] {
			return fmt.Errorf("question %q references unknown lesson %q", q.ID, q.LessonID)
		}
		if q.SignID != "" && !sids[q.SignID] {
			return fmt.Errorf("question %q references unknown sign %q", q.ID, q.SignID)
		}
	}
	for _, l := range c.Lessons {
		if l.SectionID != "" && !secs[l.SectionID] {
			return fmt.Errorf("lesson %q references unknown section %q", l.ID, l.SectionID)
		}
	}
	return nil
}
