package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListHistoryHandler returns the lightweight history index
// @Summary      List past generations
// @Description  Returns the bounded, newest-first history index without the heavy payloads
// @Tags         History
// @Produce      json
// @Success      200  {array}   models.HistoryEntry
// @Failure      500  {object}  map[string]string
// @Router       /api/history [get]
func (h *Handlers) ListHistoryHandler(c *gin.Context) {
	index, err := h.history.List()
	if err != nil {
		log.Printf("Error listing history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, index)
}

// GetHistoryHandler returns one fully materialized history entry
// @Summary      Get one past generation
// @Description  Looks up a history entry by its exact timestamp and attaches the stored generation result
// @Tags         History
// @Produce      json
// @Param        timestamp  path      string  true  "Entry timestamp (RFC3339Nano)"
// @Success      200        {object}  models.HistoryEntry
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/history/{timestamp} [get]
func (h *Handlers) GetHistoryHandler(c *gin.Context) {
	timestamp := c.Param("timestamp")

	entry, found, err := h.history.Get(timestamp)
	if err != nil {
		log.Printf("Error loading history entry %s: %v", timestamp, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history entry"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteHistoryHandler removes one history entry and its stored payload
// @Summary      Delete one past generation
// @Tags         History
// @Produce      json
// @Param        timestamp  path      string  true  "Entry timestamp (RFC3339Nano)"
// @Success      200        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/history/{timestamp} [delete]
func (h *Handlers) DeleteHistoryHandler(c *gin.Context) {
	timestamp := c.Param("timestamp")

	if err := h.history.Remove(timestamp); err != nil {
		log.Printf("Error removing history entry %s: %v", timestamp, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove history entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ClearHistoryHandler removes every history entry and all stored payloads
// @Summary      Clear generation history
// @Tags         History
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/history [delete]
func (h *Handlers) ClearHistoryHandler(c *gin.Context) {
	if err := h.history.Clear(); err != nil {
		log.Printf("Error clearing history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
