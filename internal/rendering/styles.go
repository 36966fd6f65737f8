package rendering

import (
	"embed"

	"github.com/jonathan/resume-nest/internal/types"
)

//go:embed styles/*.css
var styleFS embed.FS

// Stylesheet returns the print stylesheet for t: the shared A4 base followed by
// the template's own rules. Unknown templates get the FallbackTemplate rules.
func Stylesheet(t types.TemplateType) string {
	if !t.Valid() {
		t = FallbackTemplate
	}
	base, err := styleFS.ReadFile("styles/base.css")
	if err != nil {
		panic("rendering: missing embedded base stylesheet")
	}
	own, err := styleFS.ReadFile("styles/" + t.Slug() + ".css")
	if err != nil {
		panic("rendering: missing embedded stylesheet for " + t.Slug())
	}
	return string(base) + "\n" + string(own)
}
