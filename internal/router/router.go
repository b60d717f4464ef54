package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	BulkAddParticipants(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	AddToShortlist(c *ginext.Context)
	RemoveFromShortlist(c *ginext.Context)
	VerifyCheckin(c *ginext.Context)
	ConfirmCheckin(c *ginext.Context)
	ManualCheckin(c *ginext.Context)
	VerifyQR(c *ginext.Context)
	ScanQR(c *ginext.Context)
	GenerateQR(c *ginext.Context)
	SendInvitations(c *ginext.Context)
	SendConfirmations(c *ginext.Context)
	TestSend(c *ginext.Context)
	CreateTemplate(c *ginext.Context)
	GetTemplate(c *ginext.Context)
	GetDefaultTemplates(c *ginext.Context)
	ListEventTemplates(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Participants
		api.POST("/events/:id/participants", h.BulkAddParticipants)
		api.GET("/events/:id/participants", h.ListParticipants)
		api.POST("/shortlist/add", h.AddToShortlist)
		api.POST("/shortlist/remove", h.RemoveFromShortlist)

		// Check-in
		api.GET("/checkin/:token", h.VerifyCheckin)
		api.POST("/checkin/:token", h.ConfirmCheckin)
		api.POST("/checkin/manual", h.ManualCheckin)

		// QR
		api.POST("/qr/verify", h.VerifyQR)
		api.POST("/qr/scan", h.ScanQR)
		api.GET("/qr/generate/:id", h.GenerateQR)

		// Email
		api.POST("/email/send-invitations", h.SendInvitations)
		api.POST("/email/send-confirmations", h.SendConfirmations)
		api.POST("/email/test", h.TestSend)

		// Templates
		api.POST("/templates", h.CreateTemplate)
		api.GET("/templates/defaults/:id", h.GetDefaultTemplates)
		api.GET("/templates/:id", h.GetTemplate)
		api.GET("/events/:id/templates", h.ListEventTemplates)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
