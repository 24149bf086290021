// Package llm - extractor.go provides the structured extraction prompt
// definitions.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeProfile")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // JSON-ish type hint shown to the model
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Omit fields you cannot find rather than guessing.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Resume text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeProfileSchema returns the extraction schema for resume documents.
// The schema is deliberately non-strict: every field tolerates absence so
// partial extractions still validate.
func ResumeProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeProfile",
		Description: `You are an expert resume parser. Extract structured profile data from the resume text below.
Rules:
- Preserve the EXACT skill category names used in the resume (e.g., "Technical Skills" stays "Technical Skills").
- Extract the full legal name including any middle name or initial.
- Extract BOTH start and end dates for education entries when present.
- Extract GPA when stated.
- Lines starting with ## mark detected section headings.`,
		Fields: []SchemaField{
			{
				Name:        "contact",
				Type:        `{"firstName": "string", "middleName": "string", "lastName": "string", "email": "string", "phone": "string", "location": "string", "linkedin": "string", "github": "string", "website": "string"}`,
				Description: "Contact details, best effort",
			},
			{
				Name:        "summary",
				Type:        `"string"`,
				Description: "Professional summary or objective, verbatim",
			},
			{
				Name:        "experience",
				Type:        `[{"company": "string", "position": "string", "location": "string", "startDate": "string", "endDate": "string", "current": true, "description": "string", "achievements": ["string"]}]`,
				Description: "Work history, most recent first as listed",
			},
			{
				Name:        "education",
				Type:        `[{"institution": "string", "degree": "string", "fieldOfStudy": "string", "location": "string", "startDate": "string", "endDate": "string", "gpa": "string"}]`,
				Description: "Education entries with both dates and GPA when stated",
			},
			{
				Name:        "projects",
				Type:        `[{"name": "string", "description": "string", "startDate": "string", "endDate": "string", "current": false, "achievements": ["string"], "url": "string"}]`,
				Description: "Projects with optional dates and URL",
			},
			{
				Name:        "certifications",
				Type:        `[{"name": "string", "issuer": "string", "date": "string"}]`,
				Description: "Certifications and licenses",
			},
			{
				Name:        "skills",
				Type:        `{"Category Name": ["string"]}`,
				Description: "Skills grouped under the resume's own category names, preserved verbatim",
			},
		},
	}
}
