package http

import "github.com/gin-gonic/gin"

// Register attaches user account routes to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
}
