package editor

import "github.com/jonathan/resume-nest/internal/types"

// AddExperience appends an empty experience entry and returns its ID.
func (s *Session) AddExperience() string {
	e := types.NewExperience()
	s.Update(func(d *types.ResumeData) { d.Experience = append(d.Experience, e) })
	return e.ID
}

// UpdateExperience edits the entry at index. It reports false when index is out of range.
func (s *Session) UpdateExperience(index int, edit func(*types.Experience)) bool {
	ok := false
	s.Update(func(d *types.ResumeData) {
		if index >= 0 && index < len(d.Experience) {
			edit(&d.Experience[index])
			ok = true
		}
	})
	return ok
}

// RemoveExperience deletes the entry at index. It reports false when index is out of range.
func (s *Session) RemoveExperience(index int) bool {
	ok := false
	s.Update(func(d *types.ResumeData) { d.Experience, ok = removeAt(d.Experience, index) })
	return ok
}

// AddEducation appends an empty education entry and returns its ID.
func (s *Session) AddEducation() string {
	e := types.NewEducation()
	s.Update(func(d *types.ResumeData) { d.Education = append(d.Education, e) })
	return e.ID
}

// UpdateEducation edits the entry at index. It reports false when index is out of range.
func (s *Session) UpdateEducation(index int, edit func(*types.Education)) bool {
	ok := false
	s.Update(func(d *types.ResumeData) {
		if index >= 0 && index < len(d.Education) {
			edit(&d.Education[index])
			ok = true
		}
	})
	return ok
}

// RemoveEducation deletes the entry at index. It reports false when index is out of range.
func (s *Session) RemoveEducation(index int) bool {
	ok := false
	s.Update(func(d *types.ResumeData) { d.Education, ok = removeAt(d.Education, index) })
	return ok
}

// AddProject appends an empty project entry and returns its ID.
func (s *Session) AddProject() string {
	p := types.NewProject()
	s.Update(func(d *types.ResumeData) { d.Projects = append(d.Projects, p) })
	return p.ID
}

// UpdateProject edits the entry at index. It reports false when index is out of range.
func (s *Session) UpdateProject(index int, edit func(*types.Project)) bool {
	ok := false
	s.Update(func(d *types.ResumeData) {
		if index >= 0 && index < len(d.Projects) {
			edit(&d.Projects[index])
			ok = true
		}
	})
	return ok
}

// RemoveProject deletes the entry at index. It reports false when index is out of range.
func (s *Session) RemoveProject(index int) bool {
	ok := false
	s.Update(func(d *types.ResumeData) { d.Projects, ok = removeAt(d.Projects, index) })
	return ok
}

func removeAt[T any](items []T, index int) ([]T, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), true
}
