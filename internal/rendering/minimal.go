package rendering

import (
	"strings"

	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/types"
)

// renderMinimal lays out a single serif column with an education and skills grid.
func renderMinimal(data types.ResumeData) *Node {
	info := data.PersonalInfo

	header := section(SectionHeader, "minimal-header",
		nameEl("h1", "name", strings.ToUpper(orPlaceholder(info.FullName, "Your Name"))),
		heading("p", "job-title", orPlaceholder(info.JobTitle, "Professional Title")),
		textEl("div", "contact", joinNonBlank(" • ", info.Email, info.Phone, info.Location, info.LinkedIn)),
	)

	var summary *Node
	if !parsing.IsBlank(data.Summary) {
		summary = section(SectionSummary, "block",
			heading("h2", "", "Professional Profile"),
			textEl("p", "summary", data.Summary),
		)
	}

	var experience *Node
	if hasExperience(data) {
		list := El("div", "entries")
		for i, e := range data.Experience {
			if !experienceHasContent(e) {
				continue
			}
			list.Append(item(El("div", "entry",
				El("div", "entry-head",
					textEl("h3", "role", e.Role),
					textEl("span", "dates", dateRange(e.StartDate, e.EndDate, " - ")),
				),
				textEl("div", "company", e.Company),
				bullets("description", e.Description),
			), i))
		}
		experience = section(SectionExperience, "block", heading("h2", "", "Work Experience"), list)
	}

	var education *Node
	if hasEducation(data) {
		list := El("div", "entries")
		for i, e := range data.Education {
			if !educationHasContent(e) {
				continue
			}
			list.Append(item(El("div", "entry",
				textEl("h3", "degree", e.Degree),
				textEl("div", "school", e.School),
				textEl("div", "year", e.Year),
			), i))
		}
		education = section(SectionEducation, "", heading("h2", "", "Education"), list)
	}

	var skills *Node
	if parsing.HasContent(data.Skills) {
		skills = section(SectionSkills, "", heading("h2", "", "Skills"), listEntries("skills", data.Skills, false))
	}

	var grid *Node
	if education != nil || skills != nil {
		grid = El("div", "grid", education, skills)
	}

	return El("div", "resume minimal",
		header,
		summary,
		experience,
		grid,
		minimalProjects(data),
		minimalList(SectionAchievements, "Achievements", data.Achievements),
		minimalList(SectionCertificates, "Certificates", data.Certificates),
	)
}

func minimalProjects(data types.ResumeData) *Node {
	if !hasProjects(data) {
		return nil
	}
	list := El("div", "entries")
	for i, p := range data.Projects {
		if !projectHasContent(p) {
			continue
		}
		list.Append(item(El("div", "entry",
			El("div", "entry-head",
				textEl("h3", "title", p.Title),
				textEl("span", "technologies", p.Technologies),
			),
			bullets("description", p.Description),
			textEl("div", "link", p.Link),
		), i))
	}
	return section(SectionProjects, "block", heading("h2", "", "Projects"), list)
}

func minimalList(name, title string, items []string) *Node {
	if !parsing.HasContent(items) {
		return nil
	}
	return section(name, "block", heading("h2", "", title), listEntries("plain", items, false))
}
