package http

import "github.com/gin-gonic/gin"

// Register attaches website routes. The caller applies the user gate.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/create", h.create)
	rg.GET("/:subdomain", h.get)
}
