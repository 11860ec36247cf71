package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thequickanswers/subsite-backend/internal/templates/domain"
	"github.com/thequickanswers/subsite-backend/internal/templates/service"
)

type Handler struct {
	svc *service.TemplateService
}

func NewHandler(svc *service.TemplateService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.AppID == "" || len(req.Structure) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, amplifyAppId and structure are required", "error": true})
		return
	}

	template, err := h.svc.Create(c.Request.Context(), req.Name, req.AppID, req.Description, req.Structure)
	if err != nil {
		if errors.Is(err, domain.ErrAppIDTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "AmplifyAppId already exists!", "error": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": true})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Template created successfully",
		"template": template,
		"error":    false,
	})
}

func (h *Handler) update(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Template not found", "error": true})
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body", "error": true})
		return
	}

	template, err := h.svc.Update(c.Request.Context(), templateID, req.Name, req.Description, req.Structure)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Template not found", "error": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating template", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Template updated successfully",
		"template": template,
		"error":    false,
	})
}

func (h *Handler) delete(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Template not found", "error": true})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), templateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Template not found", "error": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting template", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully", "error": false})
}

func (h *Handler) list(c *gin.Context) {
	templates, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching templates", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates, "error": false})
}
