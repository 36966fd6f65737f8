package rendering

import (
	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/types"
)

// renderCreative lays out a banner header over a wide left and narrow right column.
func renderCreative(data types.ResumeData) *Node {
	info := data.PersonalInfo

	var contact *Node
	if values := parsing.NonBlank([]string{info.Email, info.Phone, info.Location}); len(values) > 0 {
		contact = El("div", "contact").Set(AttrSection, SectionContact)
		for _, v := range values {
			contact.Append(El("div", "", Text(v)))
		}
	}

	banner := section(SectionHeader, "banner",
		El("div", "",
			nameEl("h1", "name", orPlaceholder(info.FullName, "Your Name")),
			heading("p", "job-title", orPlaceholder(info.JobTitle, "Creative Professional")),
		),
		contact,
	)

	left := El("div", "left",
		creativeSummary(data.Summary),
		creativeExperience(data),
		creativeProjects(data),
	)

	right := El("div", "right",
		creativeSkills(data.Skills),
		creativeEducation(data),
		creativeList(SectionAchievements, "Achievements", data.Achievements),
		creativeList(SectionCertificates, "Certificates", data.Certificates),
		creativePortfolio(info.Website),
	)

	return El("div", "resume creative", banner, El("div", "body", left, right))
}

func creativeSummary(summary string) *Node {
	if parsing.IsBlank(summary) {
		return nil
	}
	return section(SectionSummary, "about",
		heading("h2", "", "About Me"),
		textEl("p", "summary", summary),
	)
}

func creativeExperience(data types.ResumeData) *Node {
	if !hasExperience(data) {
		return nil
	}
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
	return section(SectionExperience, "block",
		El("h2", "accent", El("span", "rule"), Text("Experience")),
		list,
	)
}

func creativeProjects(data types.ResumeData) *Node {
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
	return section(SectionProjects, "block",
		El("h2", "accent", El("span", "rule"), Text("Projects")),
		list,
	)
}

// creativeSkills renders skills as chips in raw stored order.
func creativeSkills(skills []string) *Node {
	if !parsing.HasContent(skills) {
		return nil
	}
	return section(SectionSkills, "side", heading("h2", "", "Expertise"), chips("chip", skills))
}

func creativeEducation(data types.ResumeData) *Node {
	if !hasEducation(data) {
		return nil
	}
	list := El("div", "entries")
	for i, e := range data.Education {
		if !educationHasContent(e) {
			continue
		}
		list.Append(item(El("div", "card",
			textEl("div", "degree", e.Degree),
			textEl("div", "school", e.School),
			textEl("div", "year", e.Year),
		), i))
	}
	return section(SectionEducation, "side", heading("h2", "", "Education"), list)
}

func creativeList(name, title string, items []string) *Node {
	if !parsing.HasContent(items) {
		return nil
	}
	return section(name, "side", heading("h2", "", title), listEntries("plain", items, false))
}

func creativePortfolio(website string) *Node {
	if parsing.IsBlank(website) {
		return nil
	}
	return section(SectionPortfolio, "portfolio",
		heading("div", "label", "Portfolio"),
		textEl("div", "website", website),
	)
}
