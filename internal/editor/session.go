// Package editor holds the live resume being edited and notifies listeners on every change.
package editor

import (
	"sync"

	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/rendering"
	"github.com/jonathan/resume-nest/internal/types"
)

// Listener receives the new snapshot after every edit.
type Listener func(data types.ResumeData, t types.TemplateType)

// Session holds exactly one live ResumeData and the active template.
// Edits are applied to a copy and swapped in whole, so a snapshot handed
// to a listener or renderer never changes underneath it.
type Session struct {
	mu        sync.RWMutex
	data      types.ResumeData
	template  types.TemplateType
	listeners []Listener
}

// NewSession starts a session from the empty resume and the default template.
func NewSession() *Session {
	return &Session{data: types.Empty(), template: types.DefaultTemplate}
}

// NewSessionFrom starts a session from previously saved data.
func NewSessionFrom(data types.ResumeData, t types.TemplateType) *Session {
	if !t.Valid() {
		t = types.DefaultTemplate
	}
	return &Session{data: data.Clone(), template: t}
}

// OnChange registers fn to be called after every edit.
func (s *Session) OnChange(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current resume.
func (s *Session) Snapshot() types.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Template returns the active template.
func (s *Session) Template() types.TemplateType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template
}

// Update applies edit to a copy of the current resume and replaces it.
func (s *Session) Update(edit func(*types.ResumeData)) {
	s.mu.Lock()
	next := s.data.Clone()
	edit(&next)
	next.Normalize()
	s.data = next
	s.mu.Unlock()

	s.notify()
}

// Replace swaps in data wholesale, e.g. after loading a stored resume.
func (s *Session) Replace(data types.ResumeData) {
	s.Update(func(d *types.ResumeData) { *d = data.Clone() })
}

// SetTemplate changes the active template. Unknown values are ignored.
func (s *Session) SetTemplate(t types.TemplateType) bool {
	if !t.Valid() {
		return false
	}
	s.mu.Lock()
	s.template = t
	s.mu.Unlock()

	s.notify()
	return true
}

// Render renders the current snapshot with the active template.
func (s *Session) Render() *rendering.Document {
	s.mu.RLock()
	data, t := s.data.Clone(), s.template
	s.mu.RUnlock()
	return rendering.Render(data, t)
}

func (s *Session) notify() {
	s.mu.RLock()
	data, t := s.data.Clone(), s.template
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(data.Clone(), t)
	}
}

// SetPersonalInfo replaces the contact block.
func (s *Session) SetPersonalInfo(info types.PersonalInfo) {
	s.Update(func(d *types.ResumeData) { d.PersonalInfo = info })
}

// SetSummary replaces the summary text.
func (s *Session) SetSummary(summary string) {
	s.Update(func(d *types.ResumeData) { d.Summary = summary })
}

// SetSkillsText stores one skill per input line. Blank lines are kept.
func (s *Session) SetSkillsText(text string) {
	s.Update(func(d *types.ResumeData) { d.Skills = parsing.SplitLines(text) })
}

// SetAchievementsText stores one achievement per input line. Blank lines are kept.
func (s *Session) SetAchievementsText(text string) {
	s.Update(func(d *types.ResumeData) { d.Achievements = parsing.SplitLines(text) })
}

// SetCertificatesText stores one certificate per input line. Blank lines are kept.
func (s *Session) SetCertificatesText(text string) {
	s.Update(func(d *types.ResumeData) { d.Certificates = parsing.SplitLines(text) })
}
