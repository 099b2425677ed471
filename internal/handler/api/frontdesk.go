package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"hotel-front-desk/internal/domain/billing"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FrontDeskHandler backs the staff portal: the arrivals board, check-in,
// in-stay charges and checkout.
type FrontDeskHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
	clock               clock.Clock
}

func NewFrontDeskHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) *FrontDeskHandler {
	return &FrontDeskHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
		clock:               clk,
	}
}

// @Summary Desk board
// @Description Arrivals board partitioned into today, upcoming and in-house
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param date query string false "Board date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.DeskBoardResponse
// @Failure 400 {object} map[string]string
// @Router /desk/board [get]
func (h *FrontDeskHandler) Board(c *gin.Context) {
	date := h.clock.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		date = parsed
	}

	board, err := h.reservationQueries.DeskBoard(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDeskBoardView(board))
}

// @Summary Search reservations
// @Description Search reservations by guest email or phone
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email substring, case-insensitive"
// @Param phone query string false "Phone digits substring"
// @Success 200 {object} resdto.ReservationListResponse
// @Router /desk/reservations [get]
func (h *FrontDeskHandler) SearchReservations(c *gin.Context) {
	items, err := h.reservationQueries.FindByGuestContact(c.Request.Context(), c.Query("email"), c.Query("phone"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Check in
// @Description Move a booked reservation to checked-in
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /desk/reservations/{id}/check-in [post]
func (h *FrontDeskHandler) CheckIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationCommands.CheckIn(c.Request.Context(), id)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Add in-stay charges
// @Description Append charge lines to a checked-in reservation
// @Tags frontdesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddChargesRequest true "Charge items"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /desk/reservations/{id}/charges [post]
func (h *FrontDeskHandler) AddCharges(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.AddChargesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.AddStayCharges(c.Request.Context(), id, req, billing.ActorStaff)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Retract charge line
// @Description Remove a retractable charge line from the ledger
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param seq path int true "Charge line sequence number"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /desk/reservations/{id}/charges/{seq} [delete]
func (h *FrontDeskHandler) RetractCharge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	seq, err := strconv.ParseInt(c.Param("seq"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid charge line sequence",
		})
		return
	}

	view, err := h.reservationCommands.RetractCharge(c.Request.Context(), id, seq)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check out
// @Description Complete a checked-in reservation, optionally appending ad hoc charges
// @Tags frontdesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckoutRequest false "Ad hoc charge items"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /desk/reservations/{id}/check-out [post]
func (h *FrontDeskHandler) CheckOut(c *gin.Context) {
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

	view, err := h.reservationCommands.Checkout(c.Request.Context(), id, req, billing.ActorStaff)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *FrontDeskHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, errs.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is not in a valid state for this operation",
		})
	case errors.Is(err, errs.ErrImmutableLine):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Charge line cannot be removed",
		})
	case errors.Is(err, errs.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Charge line not found",
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
}
