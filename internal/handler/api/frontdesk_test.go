//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/handler/api"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/queries"
	"hotel-front-desk/tests/common/builder"
	"hotel-front-desk/tests/common/httptest"
	commandsmock "hotel-front-desk/tests/mock/commands"
	queriesmock "hotel-front-desk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FrontDeskHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	now          time.Time
	handler      *api.FrontDeskHandler
}

func (s *FrontDeskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.now = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.FixedZone("Asia/Manila", 8*60*60))
	s.handler = api.NewFrontDeskHandler(s.mockCommands, s.mockQueries, clock.NewFixedClock(s.now))

	s.router.GET("/desk/board", s.handler.Board)
	s.router.GET("/desk/reservations", s.handler.SearchReservations)
	s.router.POST("/desk/reservations/:id/check-in", s.handler.CheckIn)
	s.router.POST("/desk/reservations/:id/charges", s.handler.AddCharges)
	s.router.DELETE("/desk/reservations/:id/charges/:seq", s.handler.RetractCharge)
	s.router.POST("/desk/reservations/:id/check-out", s.handler.CheckOut)
}

func (s *FrontDeskHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFrontDeskHandlerSuite(t *testing.T) {
	suite.Run(t, new(FrontDeskHandlerTestSuite))
}

func (s *FrontDeskHandlerTestSuite) buildView() *queries.ReservationView {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(res.AssignCode("BK482917"))
	return queries.NewReservationView(res)
}

func (s *FrontDeskHandlerTestSuite) TestBoard() {
	s.Run("success: defaults to the current date", func() {
		s.mockQueries.EXPECT().DeskBoard(gomock.Any(), s.now).
			Return(&queries.DeskBoardView{Date: s.now}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/desk/board", nil, "")

		var response resdto.DeskBoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("success: accepts an explicit board date", func() {
		want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().DeskBoard(gomock.Any(), want).
			Return(&queries.DeskBoardView{Date: want}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/desk/board?date=2026-03-15", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/desk/board?date=15-03-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *FrontDeskHandlerTestSuite) TestSearchReservations() {
	s.mockQueries.EXPECT().FindByGuestContact(gomock.Any(), "maria", "0917").
		Return([]*queries.ReservationListItem{{ID: uuid.New(), GuestName: "Maria Santos"}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/desk/reservations?email=maria&phone=0917", nil, "")

	var response resdto.ReservationListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(1, response.Count)
}

func (s *FrontDeskHandlerTestSuite) TestCheckIn() {
	view := s.buildView()
	url := fmt.Sprintf("/desk/reservations/%s/check-in", view.ID)

	s.Run("success: returns the updated reservation", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("BK482917", response.Code)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/desk/reservations/not-a-uuid/check-in", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), view.ID).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 409 when already checked in", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), view.ID).
			Return(nil, errs.ErrIllegalTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a valid state")
	})
}

func (s *FrontDeskHandlerTestSuite) TestAddCharges() {
	view := s.buildView()
	url := fmt.Sprintf("/desk/reservations/%s/charges", view.ID)
	reqBody := reqdto.AddChargesRequest{
		Items: []reqdto.ChargeItemRequest{
			{Description: "Minibar", UnitPriceCents: 35000, Qty: 1},
		},
	}

	s.Run("success: appends staff charges", func() {
		s.mockCommands.EXPECT().AddStayCharges(gomock.Any(), view.ID, reqBody, billing.ActorStaff).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 on an empty item list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AddChargesRequest{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the stay is not open", func() {
		s.mockCommands.EXPECT().AddStayCharges(gomock.Any(), view.ID, reqBody, billing.ActorStaff).
			Return(nil, errs.ErrIllegalTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a valid state")
	})

	s.Run("error: 422 on an invalid charge item", func() {
		s.mockCommands.EXPECT().AddStayCharges(gomock.Any(), view.ID, reqBody, billing.ActorStaff).
			Return(nil, errs.ErrInvalidCharge).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid charge item")
	})
}

func (s *FrontDeskHandlerTestSuite) TestRetractCharge() {
	view := s.buildView()

	s.Run("success: removes a retractable line", func() {
		s.mockCommands.EXPECT().RetractCharge(gomock.Any(), view.ID, int64(2)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("/desk/reservations/%s/charges/2", view.ID), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on a non-numeric sequence", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("/desk/reservations/%s/charges/two", view.ID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid charge line sequence")
	})

	s.Run("error: 404 on an unknown sequence", func() {
		s.mockCommands.EXPECT().RetractCharge(gomock.Any(), view.ID, int64(99)).
			Return(nil, errs.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("/desk/reservations/%s/charges/99", view.ID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Charge line not found")
	})

	s.Run("error: 409 on the room charge line", func() {
		s.mockCommands.EXPECT().RetractCharge(gomock.Any(), view.ID, int64(1)).
			Return(nil, errs.ErrImmutableLine).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("/desk/reservations/%s/charges/1", view.ID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be removed")
	})
}

func (s *FrontDeskHandlerTestSuite) TestCheckOut() {
	view := s.buildView()
	url := fmt.Sprintf("/desk/reservations/%s/check-out", view.ID)

	s.Run("success: completes without a body", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), view.ID, reqdto.CheckoutRequest{}, billing.ActorStaff).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: completes with ad hoc charges", func() {
		reqBody := reqdto.CheckoutRequest{
			AdHocItems: []reqdto.ChargeItemRequest{
				{Description: "Late checkout fee", UnitPriceCents: 150000, Qty: 1},
			},
		}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), view.ID, reqBody, billing.ActorStaff).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 409 when not checked in", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), view.ID, reqdto.CheckoutRequest{}, billing.ActorStaff).
			Return(nil, errs.ErrIllegalTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a valid state")
	})
}
