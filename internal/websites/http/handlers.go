package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thequickanswers/subsite-backend/internal/auth"
	"github.com/thequickanswers/subsite-backend/internal/hosting"
	"github.com/thequickanswers/subsite-backend/internal/websites/domain"
	"github.com/thequickanswers/subsite-backend/internal/websites/service"
)

// Provisioner runs the website provisioning workflow.
type Provisioner interface {
	Provision(ctx context.Context, req service.ProvisionRequest) (*service.ProvisionResult, error)
}

// WebsiteReader serves the read side of the website surface.
type WebsiteReader interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Website, error)
}

type Handler struct {
	provisioner Provisioner
	websites    WebsiteReader
}

func NewHandler(provisioner Provisioner, websites WebsiteReader) *Handler {
	return &Handler{provisioner: provisioner, websites: websites}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body", "error": true})
		return
	}

	result, err := h.provisioner.Provision(c.Request.Context(), service.ProvisionRequest{
		AppID:     req.AmplifyApp,
		Name:      req.Name,
		Subdomain: req.Subdomain,
		Content:   req.Content,
		UserID:    auth.UserID(c),
	})
	if err != nil {
		h.provisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Website created at %s", result.Domain),
		"domain":  result.Domain,
		"data": gin.H{
			"websiteContent":      result.Website,
			"amplifyDomainTarget": result.Target,
		},
		"error": false,
	})
}

func (h *Handler) get(c *gin.Context) {
	subdomain := c.Param("subdomain")

	website, err := h.websites.GetBySubdomain(c.Request.Context(), subdomain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Website not found", "error": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Website content fetched successfully",
		"websiteContent": website,
		"error":          false,
	})
}

// provisionError translates workflow failures into the response
// taxonomy: validation and conflict gates are 400s with fixed messages,
// classified external failures are 400s with the service's message
// attached, everything else is a 500 surfacing the original message.
func (h *Handler) provisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidApp):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Amplify app", "error": true})
	case errors.Is(err, domain.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required", "error": true})
	case errors.Is(err, domain.ErrSubdomainTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Subdomain already exists", "error": true})
	case errors.Is(err, domain.ErrInvalidSubdomain):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid subdomain. Use only lowercase alphanumeric characters and hyphens", "error": true})
	case errors.Is(err, hosting.ErrNoDefaultDomain):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not retrieve Amplify app default domain", "error": true})
	case errors.Is(err, hosting.ErrDomainNotAssociated):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Domain not associated with this Amplify app. Please associate it manually first.", "error": true})
	default:
		var perr *service.ProvisionError
		if errors.As(err, &perr) {
			if perr.BadRequest {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Invalid subdomain configuration",
					"details": perr.Err.Error(),
					"steps":   perr.Steps,
					"error":   true,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":  perr.Err.Error(),
				"steps":    perr.Steps,
				"dangling": perr.Dangling,
				"error":    true,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "error": true})
	}
}
