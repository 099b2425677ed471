package api

import (
	"errors"
	"io"
	"net/http"

	"hotel-front-desk/internal/domain/billing"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler is the guest self-checkout kiosk: find your stay by
// confirmation code, email or phone, then settle and leave.
type CheckoutHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewCheckoutHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *CheckoutHandler {
	return &CheckoutHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Search checked-in stays
// @Description Find currently checked-in reservations by code, email or phone
// @Tags checkout
// @Produce json
// @Param by query string true "Filter kind (code, email, phone)"
// @Param q query string true "Search value"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /checkout/search [get]
func (h *CheckoutHandler) Search(c *gin.Context) {
	filter, err := queries.ParseCheckedInFilter(c.Query("by"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter, expected code, email or phone",
		})
		return
	}

	value := c.Query("q")
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search value is required",
		})
		return
	}

	items, err := h.reservationQueries.FindCheckedIn(c.Request.Context(), filter, value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Self checkout
// @Description Complete a checked-in reservation from the guest kiosk
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckoutRequest false "Ad hoc charge items"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/{id} [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	// An empty body means no ad hoc charges. Bind regardless of declared
	// length so chunked requests are not silently dropped.
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.Checkout(c.Request.Context(), id, req, billing.ActorGuest)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is not checked in",
			})
		case errors.Is(err, errs.ErrInvalidCharge):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid charge item",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
