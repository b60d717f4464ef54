package dto

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" binding:"required"`
	EventTime   string `json:"event_time"`
	Venue       string `json:"venue"`
	CoverImage  string `json:"cover_image"`
}

type ParticipantRow struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	CustomFields map[string]string `json:"custom_fields"`
}

type BulkAddParticipantsRequest struct {
	Participants []ParticipantRow `json:"participants" binding:"required"`
}

type ShortlistRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
}

type ManualCheckinRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	EventID string `json:"event_id" binding:"required,uuid"`
}

type QRRequest struct {
	QRData string `json:"qr_data" binding:"required"`
}

type BulkSendRequest struct {
	EventID        string   `json:"event_id" binding:"required,uuid"`
	ParticipantIDs []string `json:"participant_ids"`
	Subject        string   `json:"subject" binding:"required"`
	HTMLContent    string   `json:"html_content" binding:"required"`
	BatchSize      int      `json:"batch_size"`
}

type TestSendRequest struct {
	To          string `json:"to" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	HTMLContent string `json:"html_content" binding:"required"`
}

type CreateTemplateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type"`
	Subject     string  `json:"subject" binding:"required"`
	HTMLContent string  `json:"html_content" binding:"required"`
	TextContent string  `json:"text_content"`
	EventID     *string `json:"event_id"`
	IsDefault   bool    `json:"is_default"`
}
