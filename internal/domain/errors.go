package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTemplateNotFound    = errors.New("template not found")
)

var (
	ErrParticipantExists = errors.New("participant already exists for this event")
	ErrNoRecipients      = errors.New("no participants found to send to")
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrValidation   = errors.New("validation error")
)
