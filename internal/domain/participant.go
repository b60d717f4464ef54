package domain

import "time"

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
	EmailStatusBounced EmailStatus = "bounced"
)

type ParticipantSource string

const (
	SourceUpload ParticipantSource = "upload"
	SourceManual ParticipantSource = "manual"
	SourceOnspot ParticipantSource = "onspot"
)

// Participant is one invitee of one event. The token is its only credential
// for both the check-in link and the QR code; it is assigned at creation and
// never rotates. The five boolean flags are one-way switches: normal operation
// only ever sets them forward.
type Participant struct {
	ID           string            `json:"id"`
	EventID      string            `json:"event_id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
	Token        string            `json:"token"`

	Invited            bool       `json:"invited"`
	InvitedAt          *time.Time `json:"invited_at,omitempty"`
	CheckedIn          bool       `json:"checked_in"`
	CheckedInAt        *time.Time `json:"checked_in_at,omitempty"`
	Shortlisted        bool       `json:"shortlisted"`
	ShortlistedAt      *time.Time `json:"shortlisted_at,omitempty"`
	ConfirmationSent   bool       `json:"confirmation_sent"`
	ConfirmationSentAt *time.Time `json:"confirmation_sent_at,omitempty"`
	Attended           bool       `json:"attended"`
	AttendedAt         *time.Time `json:"attended_at,omitempty"`

	EmailStatus EmailStatus       `json:"email_status"`
	EmailError  string            `json:"email_error,omitempty"`
	Source      ParticipantSource `json:"source"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ParticipantInput struct {
	Name         string
	Email        string
	Phone        string
	CustomFields map[string]string
}

// ParticipantFilter narrows event participant listings; nil fields are not
// applied.
type ParticipantFilter struct {
	Invited     *bool
	CheckedIn   *bool
	Shortlisted *bool
	Attended    *bool
}

type RowIssue struct {
	Row     int    `json:"row"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// UploadReport summarizes a bulk participant add: rows inserted, rows skipped
// as duplicates of an existing (email, event) pair, and rows rejected outright.
type UploadReport struct {
	Inserted   int           `json:"inserted"`
	Duplicates []RowIssue    `json:"duplicates"`
	Errors     []RowIssue    `json:"errors"`
	Created    []Participant `json:"participants"`
}

type ManualCheckinInput struct {
	Name    string
	Email   string
	Phone   string
	EventID string
}

// CheckinInfo is the read-only view returned by verify endpoints; no state is
// mutated to produce it.
type CheckinInfo struct {
	Participant *Participant `json:"participant"`
	Event       *Event       `json:"event"`
}

// CheckinResult reports a flag flip. Already is true when the flag was set
// before the call, in which case the timestamp on Participant is the original
// one and nothing was written.
type CheckinResult struct {
	Participant *Participant `json:"participant"`
	Event       *Event       `json:"event"`
	Already     bool         `json:"already"`
	Created     bool         `json:"created,omitempty"`
}
