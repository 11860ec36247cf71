package http

import "github.com/gin-gonic/gin"

// Register attaches admin account routes to the given group.
// Login is open; register and delete require the super-admin gate.
func (h *Handler) Register(rg *gin.RouterGroup, superAdminOnly gin.HandlerFunc) {
	rg.POST("/login", h.login)
	rg.POST("/register", superAdminOnly, h.register)
	rg.DELETE("/:adminId", superAdminOnly, h.delete)
}
