package http

import "github.com/gin-gonic/gin"

// Register attaches project record routes to the given router group.
// The /id/:id mutation paths mirror the tabular-store surface so clients
// written against it keep working.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PATCH("/id/:id", h.update)
	rg.DELETE("/id/:id", h.delete)
}
