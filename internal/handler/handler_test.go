package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/handler/dto"
	hmocks "github.com/maheshmahi224/backtobase/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	events       *hmocks.MockEventSvc
	participants *hmocks.MockParticipantSvc
	attendance   *hmocks.MockAttendanceSvc
	email        *hmocks.MockEmailSvc
	templates    *hmocks.MockTemplateSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		events:       hmocks.NewMockEventSvc(t),
		participants: hmocks.NewMockParticipantSvc(t),
		attendance:   hmocks.NewMockAttendanceSvc(t),
		email:        hmocks.NewMockEmailSvc(t),
		templates:    hmocks.NewMockTemplateSvc(t),
	}

	h := NewHandler(m.events, m.participants, m.attendance, m.email, m.templates)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/participants", h.BulkAddParticipants)
		api.GET("/events/:id/participants", h.ListParticipants)
		api.POST("/shortlist/add", h.AddToShortlist)
		api.POST("/shortlist/remove", h.RemoveFromShortlist)
		api.GET("/checkin/:token", h.VerifyCheckin)
		api.POST("/checkin/:token", h.ConfirmCheckin)
		api.POST("/checkin/manual", h.ManualCheckin)
		api.POST("/qr/verify", h.VerifyQR)
		api.POST("/qr/scan", h.ScanQR)
		api.GET("/qr/generate/:id", h.GenerateQR)
		api.POST("/email/send-invitations", h.SendInvitations)
		api.POST("/email/send-confirmations", h.SendConfirmations)
		api.POST("/email/test", h.TestSend)
		api.POST("/templates", h.CreateTemplate)
		api.GET("/templates/defaults/:id", h.GetDefaultTemplates)
		api.GET("/templates/:id", h.GetTemplate)
		api.GET("/events/:id/templates", h.ListEventTemplates)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:        uuid.New().String(),
		Name:      "Launch Night",
		EventDate: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Status:    domain.EventStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:      "Launch Night",
		EventDate: "2026-10-12T00:00:00Z",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Launch Night", resp.Name)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"name":       "X",
		"event_date": "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything).Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Participants ---

func TestHandler_BulkAddParticipants(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	report := &domain.UploadReport{
		Inserted: 1,
		Created:  []domain.Participant{{ID: "p1", EventID: eventID, Name: "Alice"}},
	}

	m.participants.EXPECT().BulkAdd(mock.Anything, eventID, mock.Anything).Return(report, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participants", dto.BulkAddParticipantsRequest{
		Participants: []dto.ParticipantRow{{Name: "Alice", Email: "alice@example.com"}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UploadReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Inserted)
	assert.NotNil(t, resp.Duplicates)
	assert.NotNil(t, resp.Errors)
}

func TestHandler_BulkAddParticipants_InvalidEventID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/abc/participants", dto.BulkAddParticipantsRequest{
		Participants: []dto.ParticipantRow{{Name: "Alice", Email: "alice@example.com"}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListParticipants_WithFilter(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.participants.EXPECT().
		List(mock.Anything, eventID, mock.MatchedBy(func(f domain.ParticipantFilter) bool {
			return f.Shortlisted != nil && *f.Shortlisted && f.Invited == nil
		})).
		Return([]*domain.Participant{{ID: "p1", Shortlisted: true}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/participants?shortlisted=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListParticipants_BadFilter(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/participants?invited=banana", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddToShortlist(t *testing.T) {
	m, r := setupRouter(t)

	m.participants.EXPECT().Shortlist(mock.Anything, []string{"p1", "p2"}).Return(2, nil)

	w := doJSON(t, r, http.MethodPost, "/api/shortlist/add", dto.ShortlistRequest{
		ParticipantIDs: []string{"p1", "p2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ShortlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Updated)
}

func TestHandler_RemoveFromShortlist(t *testing.T) {
	m, r := setupRouter(t)

	m.participants.EXPECT().RemoveFromShortlist(mock.Anything, []string{"p1"}).Return(1, nil)

	w := doJSON(t, r, http.MethodPost, "/api/shortlist/remove", dto.ShortlistRequest{
		ParticipantIDs: []string{"p1"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Check-in ---

func TestHandler_VerifyCheckin_UnknownToken(t *testing.T) {
	m, r := setupRouter(t)

	m.attendance.EXPECT().Verify(mock.Anything, "sometoken123").Return(nil, domain.ErrParticipantNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/checkin/sometoken123", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ConfirmCheckin_Repeated(t *testing.T) {
	m, r := setupRouter(t)

	res := &domain.CheckinResult{
		Participant: &domain.Participant{ID: "p1", CheckedIn: true},
		Event:       &domain.Event{ID: "e1"},
		Already:     true,
	}
	m.attendance.EXPECT().Confirm(mock.Anything, "sometoken123").Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/checkin/sometoken123", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckinResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyCheckedIn)
}

func TestHandler_ManualCheckin_WalkInCreated(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	res := &domain.CheckinResult{
		Participant: &domain.Participant{ID: "p1", CheckedIn: true, Source: domain.SourceOnspot},
		Event:       &domain.Event{ID: eventID},
		Created:     true,
	}
	m.attendance.EXPECT().Manual(mock.Anything, mock.Anything).Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/checkin/manual", dto.ManualCheckinRequest{
		Name:    "Bob",
		Email:   "bob@example.com",
		EventID: eventID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ScanQR_InvalidPayload(t *testing.T) {
	m, r := setupRouter(t)

	m.attendance.EXPECT().Scan(mock.Anything, "short").Return(nil, domain.ErrInvalidToken)

	w := doJSON(t, r, http.MethodPost, "/api/qr/scan", dto.QRRequest{QRData: "short"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GenerateQR(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	p := &domain.Participant{ID: id, Token: "sometoken123"}
	m.attendance.EXPECT().GenerateQR(mock.Anything, id).
		Return(p, "https://quickchart.io/qr?text=sometoken123", nil)

	w := doJSON(t, r, http.MethodGet, "/api/qr/generate/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QRResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.ImageURL, "sometoken123")
}

// --- Email ---

func TestHandler_SendInvitations(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	summary := &domain.DispatchSummary{
		TotalRecipients: 2,
		SuccessCount:    1,
		FailedCount:     1,
		Errors:          []domain.SendFailure{{CorrelationID: "p2", Email: "bob@example.com", Error: "timeout"}},
	}
	m.email.EXPECT().SendInvitations(mock.Anything, mock.MatchedBy(func(in domain.BulkSendInput) bool {
		return in.EventID == eventID && in.BatchSize == 25
	})).Return(summary, nil)

	w := doJSON(t, r, http.MethodPost, "/api/email/send-invitations", dto.BulkSendRequest{
		EventID:     eventID,
		Subject:     "Invite",
		HTMLContent: "<p>{{name}}</p>",
		BatchSize:   25,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DispatchSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.FailedCount)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "p2", resp.Errors[0].ParticipantID)
}

func TestHandler_SendConfirmations_NoRecipients(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.email.EXPECT().SendConfirmations(mock.Anything, mock.Anything).Return(nil, domain.ErrNoRecipients)

	w := doJSON(t, r, http.MethodPost, "/api/email/send-confirmations", dto.BulkSendRequest{
		EventID:     eventID,
		Subject:     "Confirmed",
		HTMLContent: "<p>hi</p>",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TestSend(t *testing.T) {
	m, r := setupRouter(t)

	m.email.EXPECT().TestSend(mock.Anything, "ops@example.com", "s", "<p>c</p>").Return("msg-1", nil)

	w := doJSON(t, r, http.MethodPost, "/api/email/test", dto.TestSendRequest{
		To:          "ops@example.com",
		Subject:     "s",
		HTMLContent: "<p>c</p>",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TestSendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "msg-1", resp.MessageID)
}

// --- Templates ---

func TestHandler_CreateTemplate(t *testing.T) {
	m, r := setupRouter(t)

	tmpl := &domain.EmailTemplate{
		ID:           uuid.New().String(),
		Name:         "Invitation",
		Type:         domain.TemplateTypeInvitation,
		Placeholders: []string{"name"},
	}
	m.templates.EXPECT().Create(mock.Anything, mock.Anything).Return(tmpl, nil)

	w := doJSON(t, r, http.MethodPost, "/api/templates", dto.CreateTemplateRequest{
		Name:        "Invitation",
		Type:        "invitation",
		Subject:     "Join us",
		HTMLContent: "<p>Hi {{name}}</p>",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"name"}, resp.Placeholders)
}

func TestHandler_GetTemplate_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/templates/nope", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetDefaultTemplates(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.templates.EXPECT().Defaults(mock.Anything, eventID).Return(&domain.TemplateDefaults{
		Invitation:   domain.TemplateContent{Subject: "You're Invited to GopherCon!"},
		Confirmation: domain.TemplateContent{Subject: "Congratulations! You've been shortlisted for {{eventName}}"},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/templates/defaults/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"invitation"`)
	assert.Contains(t, w.Body.String(), `"confirmation"`)
	assert.Contains(t, w.Body.String(), "You're Invited to GopherCon!")
}

func TestHandler_GetDefaultTemplates_UnknownEvent(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.templates.EXPECT().Defaults(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/templates/defaults/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEventTemplates(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.templates.EXPECT().ListByEvent(mock.Anything, eventID).
		Return([]*domain.EmailTemplate{{ID: "t1"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/templates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
