package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type ParticipantSvc interface {
	BulkAdd(ctx context.Context, eventID string, rows []domain.ParticipantInput) (*domain.UploadReport, error)
	List(ctx context.Context, eventID string, f domain.ParticipantFilter) ([]*domain.Participant, error)
	Shortlist(ctx context.Context, ids []string) (int64, error)
	RemoveFromShortlist(ctx context.Context, ids []string) (int64, error)
}

type AttendanceSvc interface {
	Verify(ctx context.Context, token string) (*domain.CheckinInfo, error)
	Confirm(ctx context.Context, token string) (*domain.CheckinResult, error)
	Manual(ctx context.Context, input domain.ManualCheckinInput) (*domain.CheckinResult, error)
	VerifyQR(ctx context.Context, qrData string) (*domain.CheckinInfo, error)
	Scan(ctx context.Context, qrData string) (*domain.CheckinResult, error)
	GenerateQR(ctx context.Context, participantID string) (*domain.Participant, string, error)
}

type EmailSvc interface {
	SendInvitations(ctx context.Context, input domain.BulkSendInput) (*domain.DispatchSummary, error)
	SendConfirmations(ctx context.Context, input domain.BulkSendInput) (*domain.DispatchSummary, error)
	TestSend(ctx context.Context, to, subject, htmlContent string) (string, error)
}

type TemplateSvc interface {
	Create(ctx context.Context, input domain.CreateTemplateInput) (*domain.EmailTemplate, error)
	Get(ctx context.Context, id string) (*domain.EmailTemplate, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EmailTemplate, error)
	Defaults(ctx context.Context, eventID string) (*domain.TemplateDefaults, error)
}

type Handler struct {
	eventService       EventSvc
	participantService ParticipantSvc
	attendanceService  AttendanceSvc
	emailService       EmailSvc
	templateService    TemplateSvc
}

func NewHandler(
	eventService EventSvc,
	participantService ParticipantSvc,
	attendanceService AttendanceSvc,
	emailService EmailSvc,
	templateService TemplateSvc,
) *Handler {
	return &Handler{
		eventService:       eventService,
		participantService: participantService,
		attendanceService:  attendanceService,
		emailService:       emailService,
		templateService:    templateService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		EventDate:   eventDate,
		EventTime:   req.EventTime,
		Venue:       req.Venue,
		CoverImage:  req.CoverImage,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Participants

func (h *Handler) BulkAddParticipants(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.BulkAddParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rows := make([]domain.ParticipantInput, 0, len(req.Participants))
	for _, r := range req.Participants {
		rows = append(rows, domain.ParticipantInput{
			Name:         r.Name,
			Email:        r.Email,
			Phone:        r.Phone,
			CustomFields: r.CustomFields,
		})
	}

	report, err := h.participantService.BulkAdd(c.Request.Context(), eventID, rows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadReportResponse(report))
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var filter domain.ParticipantFilter
	for name, field := range map[string]**bool{
		"invited":     &filter.Invited,
		"checked_in":  &filter.CheckedIn,
		"shortlisted": &filter.Shortlisted,
		"attended":    &filter.Attended,
	} {
		raw, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " filter"})
			return
		}
		*field = &v
	}

	participants, err := h.participantService.List(c.Request.Context(), eventID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		resp = append(resp, dto.ToParticipantResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddToShortlist(c *ginext.Context) {
	var req dto.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.participantService.Shortlist(c.Request.Context(), req.ParticipantIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShortlistResponse{Updated: updated})
}

func (h *Handler) RemoveFromShortlist(c *ginext.Context) {
	var req dto.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.participantService.RemoveFromShortlist(c.Request.Context(), req.ParticipantIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShortlistResponse{Updated: updated})
}

// Check-in

func (h *Handler) VerifyCheckin(c *ginext.Context) {
	info, err := h.attendanceService.Verify(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinInfoResponse(info))
}

func (h *Handler) ConfirmCheckin(c *ginext.Context) {
	res, err := h.attendanceService.Confirm(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinResultResponse(res))
}

func (h *Handler) ManualCheckin(c *ginext.Context) {
	var req dto.ManualCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.attendanceService.Manual(c.Request.Context(), domain.ManualCheckinInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		EventID: req.EventID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToCheckinResultResponse(res))
}

func (h *Handler) VerifyQR(c *ginext.Context) {
	var req dto.QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	info, err := h.attendanceService.VerifyQR(c.Request.Context(), req.QRData)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinInfoResponse(info))
}

func (h *Handler) ScanQR(c *ginext.Context) {
	var req dto.QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.attendanceService.Scan(c.Request.Context(), req.QRData)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinResultResponse(res))
}

func (h *Handler) GenerateQR(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid participant id"})
		return
	}

	participant, imageURL, err := h.attendanceService.GenerateQR(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QRResponse{
		Participant: dto.ToParticipantResponse(participant),
		ImageURL:    imageURL,
	})
}

// Email

func (h *Handler) SendInvitations(c *ginext.Context) {
	h.bulkSend(c, h.emailService.SendInvitations)
}

func (h *Handler) SendConfirmations(c *ginext.Context) {
	h.bulkSend(c, h.emailService.SendConfirmations)
}

func (h *Handler) bulkSend(c *ginext.Context, send func(context.Context, domain.BulkSendInput) (*domain.DispatchSummary, error)) {
	var req dto.BulkSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := send(c.Request.Context(), domain.BulkSendInput{
		EventID:        req.EventID,
		ParticipantIDs: req.ParticipantIDs,
		Subject:        req.Subject,
		HTMLContent:    req.HTMLContent,
		BatchSize:      req.BatchSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDispatchSummaryResponse(summary))
}

func (h *Handler) TestSend(c *ginext.Context) {
	var req dto.TestSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.emailService.TestSend(c.Request.Context(), req.To, req.Subject, req.HTMLContent)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TestSendResponse{MessageID: id})
}

// Templates

func (h *Handler) CreateTemplate(c *ginext.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tmpl, err := h.templateService.Create(c.Request.Context(), domain.CreateTemplateInput{
		Name:        req.Name,
		Type:        domain.TemplateType(req.Type),
		Subject:     req.Subject,
		HTMLContent: req.HTMLContent,
		TextContent: req.TextContent,
		EventID:     req.EventID,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateResponse(tmpl))
}

func (h *Handler) GetTemplate(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid template id"})
		return
	}

	tmpl, err := h.templateService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(tmpl))
}

func (h *Handler) GetDefaultTemplates(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	defaults, err := h.templateService.Defaults(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDefaultsResponse(defaults))
}

func (h *Handler) ListEventTemplates(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	templates, err := h.templateService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, dto.ToTemplateResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrParticipantExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrNoRecipients):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
