package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List bookable units
// @Description List catalog units, optionally filtered by category and capacity
// @Tags catalog
// @Produce json
// @Param category query string false "Unit category (room, banquet, restaurant)"
// @Param min_capacity query int false "Minimum capacity"
// @Success 200 {object} resdto.UnitListResponse
// @Failure 400 {object} map[string]string
// @Router /catalog/units [get]
func (h *CatalogHandler) ListUnits(c *gin.Context) {
	category := c.Query("category")

	minCapacity := 0
	if raw := c.Query("min_capacity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid min_capacity",
			})
			return
		}
		minCapacity = parsed
	}

	units, err := h.catalogQueries.ListUnits(c.Request.Context(), category, minCapacity)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUnitList(units))
}

// @Summary Get bookable unit
// @Description Get one catalog unit by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} queries.UnitView
// @Failure 404 {object} map[string]string
// @Router /catalog/units/{id} [get]
func (h *CatalogHandler) GetUnit(c *gin.Context) {
	unit, err := h.catalogQueries.GetUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, unit)
}
