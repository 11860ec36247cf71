package http

import "github.com/gin-gonic/gin"

// Register attaches template CRUD routes. All routes are admin-gated by the caller.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.PUT("/:templateId", h.update)
	rg.DELETE("/:templateId", h.delete)
}
