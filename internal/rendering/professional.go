package rendering

import (
	"strings"

	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/types"
)

// renderProfessional lays out a dense ATS-style single column.
// It is the only layout that strips pasted bullet glyphs from achievements and certificates.
func renderProfessional(data types.ResumeData) *Node {
	return El("div", "resume professional",
		professionalHeader(data.PersonalInfo),
		El("hr", "rule"),
		professionalSummary(data.Summary),
		professionalSkills(data.Skills),
		professionalEducation(data),
		professionalExperience(data),
		professionalProjects(data),
		professionalList(SectionAchievements, "ACHIEVEMENTS", data.Achievements),
		professionalList(SectionCertificates, "CERTIFICATES", data.Certificates),
	)
}

func professionalHeader(info types.PersonalInfo) *Node {
	var contact *Node
	parts := make([]*Node, 0, 4)
	if v := strings.TrimSpace(info.Phone); v != "" {
		parts = append(parts, El("span", "", Text(v)))
	}
	if v := strings.TrimSpace(info.Email); v != "" {
		parts = append(parts, El("a", "link", Text(v)).Set("href", "mailto:"+v))
	}
	if v := strings.TrimSpace(info.LinkedIn); v != "" {
		parts = append(parts, El("span", "link", Text(v)))
	}
	if v := strings.TrimSpace(info.Website); v != "" {
		parts = append(parts, El("span", "link", Text(v)))
	}
	if len(parts) > 0 {
		contact = El("div", "contact").Set(AttrSection, SectionContact)
		for i, p := range parts {
			if i > 0 {
				contact.Append(El("span", "sep", Text(" | ")))
			}
			contact.Append(p)
		}
	}

	return section(SectionHeader, "centered",
		nameEl("h1", "name", strings.ToUpper(orPlaceholder(info.FullName, "YOUR NAME"))),
		textEl("div", "job-title", info.JobTitle),
		textEl("div", "location", info.Location),
		contact,
	)
}

func professionalSummary(summary string) *Node {
	if parsing.IsBlank(summary) {
		return nil
	}
	return section(SectionSummary, "block",
		heading("h2", "", "CAREER OBJECTIVE"),
		textEl("p", "justified", summary),
	)
}

// professionalSkills bolds the category of "Category: skill, skill" entries.
func professionalSkills(skills []string) *Node {
	if !parsing.HasContent(skills) {
		return nil
	}
	ul := El("ul", "dotted")
	entries(skills, false, func(i int, s string) {
		li := El("li", "")
		if category, value, ok := parsing.SplitCategory(s); ok {
			li.Append(El("b", "", Text(category+":")), Text(" "+value))
		} else {
			li.Append(Text(s))
		}
		ul.Append(item(li, i))
	})
	return section(SectionSkills, "block", heading("h2", "ruled", "SKILLS"), ul)
}

func professionalEducation(data types.ResumeData) *Node {
	if !hasEducation(data) {
		return nil
	}
	list := El("div", "entries")
	for i, e := range data.Education {
		if !educationHasContent(e) {
			continue
		}
		line := El("div", "grow", textEl("span", "school", e.School))
		if degree := strings.TrimSpace(e.Degree); degree != "" {
			if !parsing.IsBlank(e.School) {
				line.Append(Text(" – "))
			}
			line.Append(El("b", "degree", Text(degree)))
		}
		list.Append(item(El("div", "row", line, textEl("div", "year", e.Year)), i))
	}
	return section(SectionEducation, "block", heading("h2", "ruled", "EDUCATION"), list)
}

func professionalExperience(data types.ResumeData) *Node {
	if !hasExperience(data) {
		return nil
	}
	list := El("div", "entries")
	for i, e := range data.Experience {
		if !experienceHasContent(e) {
			continue
		}
		title := El("span", "", textEl("span", "company", e.Company))
		if !parsing.IsBlank(e.Role) {
			if !parsing.IsBlank(e.Company) {
				title.Append(Text(" – "))
			}
			title.Append(textEl("span", "role", e.Role))
		}
		list.Append(item(El("div", "entry",
			El("div", "row bold",
				title,
				textEl("span", "dates", dateRange(e.StartDate, e.EndDate, " – ")),
			),
			bullets("dotted", e.Description),
		), i))
	}
	return section(SectionExperience, "block", heading("h2", "ruled", "WORK EXPERIENCE"), list)
}

func professionalProjects(data types.ResumeData) *Node {
	if !hasProjects(data) {
		return nil
	}
	list := El("div", "entries")
	for i, p := range data.Projects {
		if !projectHasContent(p) {
			continue
		}
		title := El("div", "bold", textEl("span", "title", p.Title))
		if tech := strings.TrimSpace(p.Technologies); tech != "" {
			title.Append(Text(" "), El("i", "technologies", Text("("+tech+")")))
		}
		list.Append(item(El("div", "entry",
			title,
			bullets("dotted", p.Description),
			textEl("div", "link", p.Link),
		), i))
	}
	return section(SectionProjects, "block", heading("h2", "ruled", "PROJECTS"), list)
}

func professionalList(name, title string, items []string) *Node {
	if !parsing.HasContent(items) {
		return nil
	}
	return section(name, "block", heading("h2", "ruled", title), listEntries("dotted", items, true))
}
