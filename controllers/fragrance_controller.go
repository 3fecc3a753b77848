package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"perfume-shop/services"
)

type FragranceController struct {
	catalog *services.CatalogService
}

func NewFragranceController(catalog *services.CatalogService) *FragranceController {
	return &FragranceController{catalog: catalog}
}

// @Summary List fragrances
// @Description Get the full fragrance catalog
// @Tags Fragrances
// @Produce json
// @Success 200 {array} models.Fragrance
// @Failure 500 {object} models.ErrorResponse
// @Router /api/fragrances [get]
func (ctrl *FragranceController) ListFragrances(c *gin.Context) {
	fragrances, err := ctrl.catalog.ListFragrances(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fragrances)
}

// @Summary Get fragrance by slug
// @Tags Fragrances
// @Produce json
// @Param slug path string true "Fragrance slug"
// @Success 200 {object} models.Fragrance
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/fragrances/{slug} [get]
func (ctrl *FragranceController) GetFragrance(c *gin.Context) {
	fragrance, err := ctrl.catalog.GetFragrance(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fragrance)
}
