package rendering

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/types"
)

// renderModern lays out a fixed-width side panel next to a main timeline region.
func renderModern(data types.ResumeData) *Node {
	info := data.PersonalInfo

	identity := section(SectionHeader, "identity",
		El("div", "avatar", Text(avatarInitial(info.FullName))),
		nameEl("h2", "name", orPlaceholder(info.FullName, "Your Name")),
		heading("p", "job-title", orPlaceholder(info.JobTitle, "Job Title")),
	)

	side := El("aside", "sidebar",
		identity,
		modernContact(info),
		modernSkills(data.Skills),
		modernEducation(data),
	)

	content := El("div", "main",
		modernSummary(data.Summary),
		modernExperience(data),
		modernProjects(data),
		modernList(SectionAchievements, "Achievements", data.Achievements),
		modernList(SectionCertificates, "Certificates", data.Certificates),
	)

	return El("div", "resume modern", side, content)
}

func avatarInitial(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "A"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}

func modernContact(info types.PersonalInfo) *Node {
	values := parsing.NonBlank([]string{info.Email, info.Phone, info.Location, info.Website, info.LinkedIn})
	if len(values) == 0 {
		return nil
	}
	ul := El("ul", "contact")
	for _, v := range values {
		ul.Append(El("li", "", Text(v)))
	}
	return section(SectionContact, "panel", heading("h3", "", "Contact"), ul)
}

func modernSkills(skills []string) *Node {
	if !parsing.HasContent(skills) {
		return nil
	}
	return section(SectionSkills, "panel", heading("h3", "", "Skills"), chips("chip", skills))
}

func modernEducation(data types.ResumeData) *Node {
	if !hasEducation(data) {
		return nil
	}
	list := El("div", "entries")
	for i, e := range data.Education {
		if !educationHasContent(e) {
			continue
		}
		list.Append(item(El("div", "entry",
			textEl("div", "degree", e.Degree),
			textEl("div", "school", e.School),
			textEl("div", "year", e.Year),
		), i))
	}
	return section(SectionEducation, "panel", heading("h3", "", "Education"), list)
}

func modernSummary(summary string) *Node {
	if parsing.IsBlank(summary) {
		return nil
	}
	return section(SectionSummary, "block",
		heading("h2", "underlined", "Profile"),
		textEl("p", "summary", summary),
	)
}

// modernExperience renders the timeline in stored order; dates are never used for sorting.
func modernExperience(data types.ResumeData) *Node {
	if !hasExperience(data) {
		return nil
	}
	timeline := El("div", "timeline")
	for i, e := range data.Experience {
		if !experienceHasContent(e) {
			continue
		}
		timeline.Append(item(El("div", "entry",
			El("span", "dot"),
			El("div", "entry-head",
				El("div", "",
					textEl("h3", "role", e.Role),
					textEl("div", "company", e.Company),
				),
				textEl("div", "dates", dateRange(e.StartDate, e.EndDate, " - ")),
			),
			bullets("description", e.Description),
		), i))
	}
	return section(SectionExperience, "block", heading("h2", "underlined", "Experience"), timeline)
}

func modernProjects(data types.ResumeData) *Node {
	if !hasProjects(data) {
		return nil
	}
	list := El("div", "entries")
	for i, p := range data.Projects {
		if !projectHasContent(p) {
			continue
		}
		list.Append(item(El("div", "entry",
			textEl("h3", "title", p.Title),
			textEl("div", "technologies", p.Technologies),
			bullets("description", p.Description),
			textEl("div", "link", p.Link),
		), i))
	}
	return section(SectionProjects, "block", heading("h2", "underlined", "Projects"), list)
}

func modernList(name, title string, items []string) *Node {
	if !parsing.HasContent(items) {
		return nil
	}
	return section(name, "block", heading("h2", "underlined", title), listEntries("plain", items, false))
}
