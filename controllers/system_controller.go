package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"perfume-shop/models"
	"perfume-shop/services"
)

type SystemController struct {
	diagnostics *services.DiagnosticsService
}

func NewSystemController(diagnostics *services.DiagnosticsService) *SystemController {
	return &SystemController{diagnostics: diagnostics}
}

// @Summary Database diagnostics
// @Description Reports store configuration and connectivity. Never fails.
// @Tags System
// @Produce json
// @Success 200 {object} models.DiagnosticsResponse
// @Router /test [get]
func (ctrl *SystemController) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.diagnostics.Report(c.Request.Context()))
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (ctrl *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
