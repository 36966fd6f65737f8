package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-nest/internal/types"
)

var optionalSections = []string{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionAchievements,
	SectionCertificates,
}

func query(t *testing.T, doc *Document) *goquery.Document {
	t.Helper()
	q, err := goquery.NewDocumentFromReader(strings.NewReader(Fragment(doc)))
	require.NoError(t, err)
	return q
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func fullResume() types.ResumeData {
	d := types.Empty()
	d.PersonalInfo = types.PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		LinkedIn: "in/ada",
		Website:  "ada.dev",
		Location: "London",
		JobTitle: "Analyst",
	}
	d.Summary = "First programmer."
	d.Skills = []string{"Languages: Go, Rust", "", "Mathematics"}
	d.Experience = []types.Experience{
		{ID: "e1", Role: "Analyst", Company: "Engine Co", StartDate: "1842", EndDate: "1843", Description: "• Led team\nShipped v2\n\n"},
		{ID: "e2", Role: "Translator", Company: "Menabrea", StartDate: "1840", EndDate: "1841", Description: "Translated notes"},
	}
	d.Education = []types.Education{{ID: "ed1", Degree: "Mathematics", School: "Home", Year: "1835"}}
	d.Projects = []types.Project{{ID: "p1", Title: "Note G", Technologies: "Punch cards", Description: "Bernoulli numbers", Link: "https://example.com/g"}}
	d.Achievements = []string{"• First algorithm", ""}
	d.Certificates = []string{"Royal Society"}
	return d
}

func TestRender_MinimalNameOnly(t *testing.T) {
	d := types.Empty()
	d.PersonalInfo.FullName = "Ada Lovelace"

	doc := Render(d, types.TemplateMinimal)

	assert.Equal(t, []string{SectionHeader}, doc.Sections())
	q := query(t, doc)
	assert.Equal(t, "ADA LOVELACE", strings.TrimSpace(q.Find(`[data-field="fullName"]`).Text()))
	assert.Equal(t, 0, q.Find(`[data-section="contact"]`).Length())
}

func TestRender_ExperienceBulletsAllTemplates(t *testing.T) {
	d := types.Empty()
	d.Experience = []types.Experience{{ID: "e1", Role: "Lead", Description: "• Led team\nShipped v2\n\n"}}

	for _, tmpl := range types.AllTemplates() {
		t.Run(tmpl.Slug(), func(t *testing.T) {
			q := query(t, Render(d, tmpl))
			got := texts(q.Find(`[data-section="experience"] li[data-bullet]`))
			assert.Equal(t, []string{"Led team", "Shipped v2"}, got)
		})
	}
}

func TestRender_EmptyDataOmitsOptionalSections(t *testing.T) {
	blankish := types.Empty()
	blankish.Summary = "   \n"
	blankish.Skills = []string{"", "  "}
	blankish.Achievements = []string{"\t"}
	blankish.Certificates = []string{""}
	blankish.Experience = []types.Experience{{ID: "e1"}}
	blankish.Education = []types.Education{{ID: "ed1", School: " "}}
	blankish.Projects = []types.Project{{ID: "p1"}}

	inputs := map[string]types.ResumeData{
		"empty":    types.Empty(),
		"zero":     {},
		"blankish": blankish,
	}

	for name, d := range inputs {
		for _, tmpl := range types.AllTemplates() {
			t.Run(name+"/"+tmpl.Slug(), func(t *testing.T) {
				doc := Render(d, tmpl)
				assert.Equal(t, []string{SectionHeader}, doc.Sections())
				for _, s := range optionalSections {
					assert.False(t, doc.HasSection(s), "section %s rendered", s)
				}
				assert.NotEmpty(t, doc.Section(SectionHeader).TextContent())
			})
		}
	}
}

func TestRender_FullDataRendersEverySection(t *testing.T) {
	d := fullResume()
	for _, tmpl := range types.AllTemplates() {
		t.Run(tmpl.Slug(), func(t *testing.T) {
			doc := Render(d, tmpl)
			for _, s := range optionalSections {
				assert.True(t, doc.HasSection(s), "section %s missing", s)
			}
		})
	}
}

func TestRender_SingleSectionIsolation(t *testing.T) {
	builders := map[string]func(*types.ResumeData){
		SectionSummary:      func(d *types.ResumeData) { d.Summary = "Hello" },
		SectionSkills:       func(d *types.ResumeData) { d.Skills = []string{"Go"} },
		SectionExperience:   func(d *types.ResumeData) { d.Experience = []types.Experience{{ID: "1", Role: "Dev"}} },
		SectionEducation:    func(d *types.ResumeData) { d.Education = []types.Education{{ID: "1", School: "MIT"}} },
		SectionProjects:     func(d *types.ResumeData) { d.Projects = []types.Project{{ID: "1", Title: "X"}} },
		SectionAchievements: func(d *types.ResumeData) { d.Achievements = []string{"Won"} },
		SectionCertificates: func(d *types.ResumeData) { d.Certificates = []string{"CKA"} },
	}

	for name, build := range builders {
		for _, tmpl := range types.AllTemplates() {
			t.Run(name+"/"+tmpl.Slug(), func(t *testing.T) {
				d := types.Empty()
				build(&d)
				doc := Render(d, tmpl)
				for _, s := range optionalSections {
					assert.Equal(t, s == name, doc.HasSection(s), "section %s", s)
				}
			})
		}
	}
}

func TestRender_PreservesStoredOrder(t *testing.T) {
	d := types.Empty()
	d.Skills = []string{"Zeta", "", "Alpha", "Mid"}
	d.Certificates = []string{"Zulu", "Alpha"}
	d.Experience = []types.Experience{
		{ID: "a", Role: "Oldest", StartDate: "2001"},
		{ID: "b", Role: "Newest", StartDate: "2024"},
		{ID: "c", Role: "Middle", StartDate: "2010"},
	}

	for _, tmpl := range types.AllTemplates() {
		t.Run(tmpl.Slug(), func(t *testing.T) {
			q := query(t, Render(d, tmpl))

			assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, texts(q.Find(`[data-section="skills"] [data-item]`)))
			assert.Equal(t, []string{"Zulu", "Alpha"}, texts(q.Find(`[data-section="certificates"] [data-item]`)))

			var indexes []string
			q.Find(`[data-section="experience"] [data-item]`).Each(func(_ int, s *goquery.Selection) {
				v, _ := s.Attr("data-item")
				indexes = append(indexes, v)
			})
			assert.Equal(t, []string{"0", "1", "2"}, indexes)

			roles := q.Find(`[data-section="experience"] .role`)
			assert.Equal(t, []string{"Oldest", "Newest", "Middle"}, texts(roles))
		})
	}
}

func TestRender_SkillItemsCarryStoredIndex(t *testing.T) {
	d := types.Empty()
	d.Skills = []string{"", "Go", " ", "SQL"}

	q := query(t, Render(d, types.TemplateMinimal))
	var indexes []string
	q.Find(`[data-section="skills"] [data-item]`).Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("data-item")
		indexes = append(indexes, v)
	})
	assert.Equal(t, []string{"1", "3"}, indexes)
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	d := fullResume()
	d.PersonalInfo.FullName = ""
	before := d.Clone()

	for _, tmpl := range types.AllTemplates() {
		Render(d, tmpl)
	}

	assert.Equal(t, before, d)
	assert.Equal(t, "", d.PersonalInfo.FullName)
}

func TestRender_IsDeterministic(t *testing.T) {
	d := fullResume()
	for _, tmpl := range types.AllTemplates() {
		first := Render(d, tmpl)
		second := Render(d, tmpl)
		assert.Equal(t, first, second)
		assert.Equal(t, Fragment(first), Fragment(second))
	}
}

func TestRender_Placeholders(t *testing.T) {
	tests := []struct {
		tmpl     types.TemplateType
		name     string
		jobTitle string
	}{
		{tmpl: types.TemplateMinimal, name: "YOUR NAME", jobTitle: "Professional Title"},
		{tmpl: types.TemplateModern, name: "Your Name", jobTitle: "Job Title"},
		{tmpl: types.TemplateCreative, name: "Your Name", jobTitle: "Creative Professional"},
		{tmpl: types.TemplateProfessional, name: "YOUR NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.tmpl.Slug(), func(t *testing.T) {
			q := query(t, Render(types.Empty(), tt.tmpl))
			assert.Equal(t, tt.name, strings.TrimSpace(q.Find(`[data-field="fullName"]`).Text()))
			if tt.jobTitle != "" {
				assert.Equal(t, tt.jobTitle, strings.TrimSpace(q.Find(".job-title").Text()))
			}
		})
	}
}

func TestRender_ModernAvatarInitial(t *testing.T) {
	d := types.Empty()
	assert.Equal(t, "A", strings.TrimSpace(query(t, Render(d, types.TemplateModern)).Find(".avatar").Text()))

	d.PersonalInfo.FullName = "  Émilie du Châtelet"
	assert.Equal(t, "É", strings.TrimSpace(query(t, Render(d, types.TemplateModern)).Find(".avatar").Text()))
}

func TestRender_UnknownTemplateFallsBackToModern(t *testing.T) {
	doc := Render(fullResume(), types.TemplateType("FANCY"))
	assert.Equal(t, types.TemplateModern, doc.Template)
	assert.Equal(t, Render(fullResume(), types.TemplateModern), doc)
}

func TestRender_ProfessionalNormalizesListGlyphs(t *testing.T) {
	d := types.Empty()
	d.Achievements = []string{"• First algorithm", "•Second"}
	d.Certificates = []string{"•  Royal Society"}

	pro := query(t, Render(d, types.TemplateProfessional))
	assert.Equal(t, []string{"First algorithm", "Second"}, texts(pro.Find(`[data-section="achievements"] li`)))
	assert.Equal(t, []string{"Royal Society"}, texts(pro.Find(`[data-section="certificates"] li`)))

	for _, tmpl := range []types.TemplateType{types.TemplateMinimal, types.TemplateModern, types.TemplateCreative} {
		q := query(t, Render(d, tmpl))
		assert.Equal(t, []string{"• First algorithm", "•Second"}, texts(q.Find(`[data-section="achievements"] li`)), tmpl)
	}
}

func TestRender_ProfessionalSkillCategories(t *testing.T) {
	d := types.Empty()
	d.Skills = []string{"Languages: Go, Rust", "Docker"}

	q := query(t, Render(d, types.TemplateProfessional))
	items := q.Find(`[data-section="skills"] li`)
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Languages:", items.First().Find("b").Text())
	assert.Equal(t, "Languages: Go, Rust", strings.TrimSpace(items.First().Text()))
	assert.Equal(t, 0, items.Last().Find("b").Length())
}

func TestRender_ContactSeparators(t *testing.T) {
	d := types.Empty()
	d.PersonalInfo.Email = "ada@example.com"
	d.PersonalInfo.Phone = "555"

	minimal := query(t, Render(d, types.TemplateMinimal))
	assert.Equal(t, "ada@example.com • 555", strings.TrimSpace(minimal.Find(".contact").Text()))

	pro := query(t, Render(d, types.TemplateProfessional))
	assert.Equal(t, "555 | ada@example.com", strings.TrimSpace(pro.Find(`[data-section="contact"]`).Text()))
	href, ok := pro.Find(`[data-section="contact"] a`).Attr("href")
	require.True(t, ok)
	assert.Equal(t, "mailto:ada@example.com", href)
}

func TestRender_MinimalContactLeavesOutWebsite(t *testing.T) {
	q := query(t, Render(fullResume(), types.TemplateMinimal))
	contact := strings.TrimSpace(q.Find(".contact").Text())
	assert.Equal(t, "ada@example.com • 555-0100 • London • in/ada", contact)
	assert.NotContains(t, q.Text(), "ada.dev")
}

func TestRender_CreativePortfolio(t *testing.T) {
	d := types.Empty()
	assert.False(t, Render(d, types.TemplateCreative).HasSection(SectionPortfolio))

	d.PersonalInfo.Website = "ada.dev"
	doc := Render(d, types.TemplateCreative)
	require.True(t, doc.HasSection(SectionPortfolio))
	assert.Contains(t, doc.Section(SectionPortfolio).TextContent(), "ada.dev")
}

func TestRender_EscapesText(t *testing.T) {
	d := types.Empty()
	d.PersonalInfo.FullName = `<script>alert("x")</script>`

	for _, tmpl := range types.AllTemplates() {
		out := Fragment(Render(d, tmpl))
		assert.NotContains(t, out, "<script>", tmpl)
		assert.NotContains(t, out, "<SCRIPT>", tmpl)
	}
}

func TestRenderAll(t *testing.T) {
	docs := RenderAll(fullResume())
	require.Len(t, docs, len(types.AllTemplates()))
	for i, tmpl := range types.AllTemplates() {
		assert.Equal(t, tmpl, docs[i].Template)
	}
}
