package rendering

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-nest/internal/types"
)

func TestWriteHTML_NilDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, nil)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.Equal(t, "failed to write document: document is empty", err.Error())
	assert.Empty(t, Fragment(nil))
}

func TestWriteHTML_Attributes(t *testing.T) {
	doc := &Document{
		Template: types.TemplateMinimal,
		Root:     El("div", "root", El("span", "x", Text("a & b")).Set("data-item", "0")),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, doc))
	assert.Equal(t, `<div class="root"><span class="x" data-item="0">a &amp; b</span></div>`, buf.String())
}

func TestPage_IsStandaloneA4(t *testing.T) {
	d := types.Empty()
	d.PersonalInfo.FullName = "Ada Lovelace"

	for _, tmpl := range types.AllTemplates() {
		t.Run(tmpl.Slug(), func(t *testing.T) {
			page, err := RenderPage(d, tmpl)
			require.NoError(t, err)

			s := string(page)
			assert.True(t, strings.HasPrefix(s, "<!DOCTYPE html>"))
			assert.Contains(t, s, "@page { size: 210mm 297mm; margin: 0; }")

			q, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
			require.NoError(t, err)
			assert.Equal(t, 1, q.Find("main.page").Length())
			assert.Equal(t, tmpl.Slug(), q.Find("main.page > .resume").AttrOr("data-template", ""))
			assert.NotEmpty(t, strings.TrimSpace(q.Find("title").Text()))
			assert.Contains(t, q.Find("style").Text(), "."+tmpl.Slug())
		})
	}
}

func TestPage_TitleUsesRenderedName(t *testing.T) {
	d := types.Empty()
	d.PersonalInfo.FullName = "Ada Lovelace"

	page, err := Page(Render(d, types.TemplateModern))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Ada Lovelace</title>")
}

func TestStylesheet(t *testing.T) {
	for _, tmpl := range types.AllTemplates() {
		css := Stylesheet(tmpl)
		assert.Contains(t, css, "@page")
		assert.Contains(t, css, "."+tmpl.Slug())
	}
	assert.Equal(t, Stylesheet(types.TemplateModern), Stylesheet(types.TemplateType("nope")))
}

func TestDocument_Sections(t *testing.T) {
	var nilDoc *Document
	assert.Empty(t, nilDoc.Sections())
	assert.Nil(t, nilDoc.Section(SectionHeader))

	doc := Render(fullResume(), types.TemplateProfessional)
	assert.Equal(t, []string{
		SectionHeader, SectionContact, SectionSummary, SectionSkills, SectionEducation,
		SectionExperience, SectionProjects, SectionAchievements, SectionCertificates,
	}, doc.Sections())
}
