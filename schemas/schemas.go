// Package schemas embeds the JSON Schema documents for payloads accepted by resume-nest.
package schemas

import _ "embed"

// Resume is the JSON Schema for a resume data document.
//
//go:embed resume.schema.json
var Resume string
