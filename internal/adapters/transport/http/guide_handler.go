package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/dto"
	guidesvc "github.com/yatradesk/yatradesk-backend/internal/app/guide/service"
	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
)

type GuideHandler struct {
	svc guidesvc.Service
	log *zap.Logger
}

func NewGuideHandler(svc guidesvc.Service, log *zap.Logger) *GuideHandler {
	return &GuideHandler{svc: svc, log: log}
}

func (h *GuideHandler) List(c *gin.Context) {
	var q dto.ListGuidesQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	page, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(page.Guides),
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"guides":     page.Guides,
	})
}

func (h *GuideHandler) Get(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}

	g, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if customErrors.IsNotFound(err) {
			Fail(c, http.StatusNotFound, "Guide not found")
			return
		}
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "guide": g})
}

func (h *GuideHandler) Create(c *gin.Context) {
	var body dto.CreateGuideRequest
	if !bindAndValidate(c, &body) {
		return
	}

	g, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		HandleError(c, err)
		return
	}
	h.log.Info("guide created", zap.String("guide_id", g.ID.String()))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Guide created",
		"guide":   g,
	})
}

func (h *GuideHandler) Update(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}

	var body dto.UpdateGuideRequest
	if !bindAndValidate(c, &body) {
		return
	}

	g, err := h.svc.Update(c.Request.Context(), id, body)
	if err != nil {
		if customErrors.IsNotFound(err) {
			Fail(c, http.StatusNotFound, "Guide not found")
			return
		}
		HandleError(c, err)
		return
	}
	h.log.Info("guide updated", zap.String("guide_id", id.String()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Guide updated",
		"guide":   g,
	})
}

func (h *GuideHandler) Delete(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if customErrors.IsNotFound(err) {
			Fail(c, http.StatusNotFound, "Guide not found")
			return
		}
		HandleError(c, err)
		return
	}
	h.log.Info("guide deleted", zap.String("guide_id", id.String()))

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Guide deleted"})
}

func guideID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid guide id")
		return uuid.Nil, false
	}
	return id, true
}
