package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thequickanswers/subsite-backend/internal/admins/domain"
	"github.com/thequickanswers/subsite-backend/internal/admins/service"
)

type Handler struct {
	svc *service.AdminService
}

func NewHandler(svc *service.AdminService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required", "error": true})
		return
	}

	admin, err := h.svc.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists!", "error": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": true})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"admin":   gin.H{"email": admin.Email, "role": admin.Role},
		"error":   false,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid body", "error": true})
		return
	}

	token, admin, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin not found", "error": true})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials", "error": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": true})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"admin_access_token": token,
			"role":               admin.Role,
		},
		"error": false,
	})
}

func (h *Handler) delete(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("adminId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found", "error": true})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), adminID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found", "error": true})
		case errors.Is(err, domain.ErrSuperAdminImmutable):
			c.JSON(http.StatusForbidden, gin.H{"message": "Super admin cannot be deleted", "error": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting admin", "error": true})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully", "error": false})
}
