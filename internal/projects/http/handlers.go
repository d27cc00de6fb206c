package http

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[error] operation=list_projects error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	// ShouldBind dispatches on Content-Type, so both the JSON backend
	// contract and the multipart form the store surface uses land here.
	var rec domain.ProjectRecord
	if err := c.ShouldBind(&rec); err != nil || strings.TrimSpace(rec.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	rec.Name = strings.TrimSpace(rec.Name)
	if rec.WaktuInput == "" {
		rec.WaktuInput = time.Now().Format("2/1/2006, 15.04.05")
	}

	created, err := h.store.Create(c.Request.Context(), rec)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[error] operation=add_project error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding project"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

type updateReq struct {
	Data domain.ProjectRecord `json:"data"`
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Data.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rec, err := h.store.Update(c.Request.Context(), id, req.Data)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		log.Printf("[error] operation=update_project id=%s error=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating project"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		log.Printf("[error] operation=delete_project id=%s error=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
