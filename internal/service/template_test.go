package service

import (
	"context"
	"testing"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_Create_ExtractsPlaceholders(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	svc := NewTemplateService(repo, mocks.NewMockEventRepo(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	tmpl, err := svc.Create(context.Background(), domain.CreateTemplateInput{
		Name:        "Invitation",
		Type:        domain.TemplateTypeInvitation,
		Subject:     "Join {{eventName}}",
		HTMLContent: "<p>Hi {{name}}, {{eventName}} is at {{venue}}.</p>{{qr}}",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"eventName", "name", "venue", "qr"}, tmpl.Placeholders)
	assert.NotEmpty(t, tmpl.ID)
}

func TestTemplateService_Create_DefaultsToCustomType(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	svc := NewTemplateService(repo, mocks.NewMockEventRepo(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	tmpl, err := svc.Create(context.Background(), domain.CreateTemplateInput{
		Name:        "Plain",
		Subject:     "Hello",
		HTMLContent: "<p>No placeholders here.</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TemplateTypeCustom, tmpl.Type)
	assert.Empty(t, tmpl.Placeholders)
}

func TestTemplateService_Create_Validation(t *testing.T) {
	svc := NewTemplateService(mocks.NewMockTemplateRepo(t), mocks.NewMockEventRepo(t))

	cases := []struct {
		name  string
		input domain.CreateTemplateInput
	}{
		{"missing name", domain.CreateTemplateInput{Subject: "s", HTMLContent: "c"}},
		{"missing subject", domain.CreateTemplateInput{Name: "n", HTMLContent: "c"}},
		{"missing content", domain.CreateTemplateInput{Name: "n", Subject: "s"}},
		{"bad type", domain.CreateTemplateInput{Name: "n", Subject: "s", HTMLContent: "c", Type: "newsletter"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTemplateService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	svc := NewTemplateService(repo, mocks.NewMockEventRepo(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTemplateNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestTemplateService_ListByEvent(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	svc := NewTemplateService(repo, mocks.NewMockEventRepo(t))

	eventID := "e1"
	templates := []*domain.EmailTemplate{
		{ID: "t1", EventID: &eventID},
		{ID: "t2"}, // global
	}
	repo.EXPECT().ListByEvent(mock.Anything, "e1").Return(templates, nil)

	got, err := svc.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, templates, got)
}

func TestTemplateService_Defaults(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewTemplateService(mocks.NewMockTemplateRepo(t), eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Name: "GopherCon"}, nil)

	defaults, err := svc.Defaults(context.Background(), "e1")

	require.NoError(t, err)

	assert.Equal(t, "You're Invited to GopherCon!", defaults.Invitation.Subject)
	assert.Contains(t, defaults.Invitation.HTMLContent, "{{checkinLink}}")
	assert.Contains(t, defaults.Invitation.HTMLContent, "{{qr}}")
	assert.Contains(t, defaults.Invitation.Placeholders, "name")
	assert.Contains(t, defaults.Invitation.Placeholders, "checkinLink")
	assert.Contains(t, defaults.Invitation.Placeholders, "calendarLink")

	// the confirmation subject stays templated so it renders per participant
	assert.Equal(t, "Congratulations! You've been shortlisted for {{eventName}}", defaults.Confirmation.Subject)
	assert.Contains(t, defaults.Confirmation.HTMLContent, "{{qr}}")
	assert.Contains(t, defaults.Confirmation.Placeholders, "eventName")
	assert.NotContains(t, defaults.Confirmation.Placeholders, "checkinLink")
}

func TestTemplateService_Defaults_EventNotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewTemplateService(mocks.NewMockTemplateRepo(t), eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Defaults(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
