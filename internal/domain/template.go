package domain

import "time"

type TemplateType string

const (
	TemplateTypeInvitation   TemplateType = "invitation"
	TemplateTypeConfirmation TemplateType = "confirmation"
	TemplateTypeReminder     TemplateType = "reminder"
	TemplateTypeCustom       TemplateType = "custom"
)

// EmailTemplate is a named (subject, html, text) triple with the placeholder
// names extracted from its content. EventID is nil for global templates.
type EmailTemplate struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         TemplateType `json:"type"`
	Subject      string       `json:"subject"`
	HTMLContent  string       `json:"html_content"`
	TextContent  string       `json:"text_content,omitempty"`
	Placeholders []string     `json:"placeholders"`
	EventID      *string      `json:"event_id,omitempty"`
	IsDefault    bool         `json:"is_default"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// TemplateContent is a renderable (subject, html) pair with its extracted
// placeholder names. The built-in defaults are served as content rather than
// stored rows: they are prepared per event on demand.
type TemplateContent struct {
	Subject      string   `json:"subject"`
	HTMLContent  string   `json:"html_content"`
	Placeholders []string `json:"placeholders"`
}

// TemplateDefaults bundles the built-in invitation and confirmation
// templates prepared for one event.
type TemplateDefaults struct {
	Invitation   TemplateContent `json:"invitation"`
	Confirmation TemplateContent `json:"confirmation"`
}

type CreateTemplateInput struct {
	Name        string
	Type        TemplateType
	Subject     string
	HTMLContent string
	TextContent string
	EventID     *string
	IsDefault   bool
}
