//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-front-desk/internal/handler/api"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/queries"
	"hotel-front-desk/tests/common/httptest"
	queriesmock "hotel-front-desk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/catalog/units", s.handler.ListUnits)
	s.router.GET("/catalog/units/:id", s.handler.GetUnit)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListUnits() {
	units := []*queries.UnitView{
		{ID: "1", Name: "Deluxe Suite", Category: "room", RateCentavos: 799900, Capacity: 2},
		{ID: "4", Name: "Grand Ballroom", Category: "banquet", RateCentavos: 4999900, Capacity: 200},
	}

	s.Run("success: lists every unit", func() {
		s.mockQueries.EXPECT().ListUnits(gomock.Any(), "", 0).
			Return(units, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/units", nil, "")

		var response resdto.UnitListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
	})

	s.Run("success: forwards category and capacity filters", func() {
		s.mockQueries.EXPECT().ListUnits(gomock.Any(), "banquet", 150).
			Return(units[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/units?category=banquet&min_capacity=150", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on a negative min_capacity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/units?min_capacity=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid min_capacity")
	})

	s.Run("error: 400 on an unknown category", func() {
		s.mockQueries.EXPECT().ListUnits(gomock.Any(), "penthouse", 0).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/units?category=penthouse", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid category")
	})
}

func (s *CatalogHandlerTestSuite) TestGetUnit() {
	s.Run("success: returns the unit", func() {
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), "6").
			Return(&queries.UnitView{ID: "6", Name: "Le Jardin Restaurant", Category: "restaurant", RateCentavos: 249900, Capacity: 8}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/units/6", nil, "")

		var response queries.UnitView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Le Jardin Restaurant", response.Name)
	})

	s.Run("error: 404 on an unknown unit", func() {
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), "99").
			Return(nil, errs.ErrUnitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/units/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unit not found")
	})
}
