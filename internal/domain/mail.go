package domain

type Attachment struct {
	Filename string
	Content  []byte
}

// SendUnit is one fully rendered email ready for delivery. CorrelationID ties
// the delivery outcome back to the caller's record (a participant ID for bulk
// sends).
type SendUnit struct {
	CorrelationID string
	To            string
	Subject       string
	HTML          string
	Text          string
	Attachments   []Attachment
}

type SendFailure struct {
	CorrelationID string `json:"participant_id"`
	Email         string `json:"email"`
	Error         string `json:"error"`
}

// DispatchReport is the per-recipient ledger of one bulk send. Every input
// unit lands in exactly one of the two lists; the dispatcher never drops a
// unit silently.
type DispatchReport struct {
	Successful []string
	Failed     []SendFailure
}

// DispatchSummary is the HTTP-facing shape of a completed bulk send.
type DispatchSummary struct {
	TotalRecipients int           `json:"total_recipients"`
	SuccessCount    int           `json:"success_count"`
	FailedCount     int           `json:"failed_count"`
	Errors          []SendFailure `json:"errors"`
}

type BulkSendInput struct {
	EventID        string
	ParticipantIDs []string
	Subject        string
	HTMLContent    string
	BatchSize      int
}
