package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demoforge/models"
	"demoforge/validation"
)

// GenerateHandler runs one demo generation end to end
// @Summary      Generate a demo dataset and agent setup
// @Description  Plans a small relational dataset and agent configuration for the given business scenario, then returns table previews and a Cloud Shell setup script
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        request  body      models.GenerateRequest   true  "Business scenario and options"
// @Success      200      {object}  models.GenerationResult  "Generation outcome (success=false carries the failure in steps/error)"
// @Failure      400      {object}  map[string]string        "Invalid request"
// @Router       /api/generate [post]
func (h *Handlers) GenerateHandler(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := validation.ValidateGoal(req.Goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Generate never returns a partial payload: failures come back as a
	// structured result with success=false.
	result := h.generator.Generate(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}
