//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mealpedeal/internal/handler/api"
	resdto "mealpedeal/internal/handler/dto/response"
	"mealpedeal/internal/usecase/commands"
	"mealpedeal/internal/usecase/queries"
	"mealpedeal/tests/common/builder"
	"mealpedeal/tests/common/httptest"
	"mealpedeal/tests/common/testutil"
	commandsmock "mealpedeal/tests/mock/commands"
	queriesmock "mealpedeal/tests/mock/queries"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	customerID   uuid.UUID
	restaurantID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.customerID = uuid.New()
	s.restaurantID = uuid.New()

	customerAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor_id", s.customerID)
		c.Next()
	}
	managerAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("restaurant_id", s.restaurantID)
		c.Next()
	}

	s.router.POST("/orders", customerAuth, s.handler.PlaceOrder)
	s.router.GET("/orders", customerAuth, s.handler.ListMyOrders)
	s.router.GET("/orders/:id", customerAuth, s.handler.GetOrder)
	s.router.POST("/orders/:id/cancel", customerAuth, s.handler.CancelOrder)
	s.router.POST("/manager/orders/:id/collect", managerAuth, s.handler.CollectOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestPlaceOrder() {
	url := "/orders"

	b := builder.NewOrderBuilder()
	reqBody := b.BuildPlaceRequestDTO()
	expectedResult := b.BuildPlaceResult()

	s.Run("success: returns 201 Created with the payment order", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.customerID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.PaymentOrderID, response.PaymentOrderID)
		s.Equal("INR", response.Currency)
		s.Equal(expectedResult.AmountPaise, response.AmountPaise)
		s.Equal(b.ID, response.Order.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing offer_id", mutate: testutil.Field("offer_id", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "missing customer_name", mutate: testutil.Field("customer_name", nil)},
			{name: "missing customer_phone", mutate: testutil.Field("customer_phone", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "offer not found", commandsError: commands.ErrOfferNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Offer not found"},
			{name: "offer no longer active", commandsError: commands.ErrOfferNotAvailable, expectedStatus: http.StatusConflict, expectedMsg: "no longer available"},
			{name: "sold out under race", commandsError: commands.ErrInsufficientStock, expectedStatus: http.StatusConflict, expectedMsg: "Not enough bags"},
			{name: "gateway down", commandsError: commands.ErrPaymentGateway, expectedStatus: http.StatusBadGateway, expectedMsg: "Payment gateway"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.customerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	returnView := builder.NewOrderBuilder().WithCustomerID(uuid.Nil).BuildView()
	returnView.ID = orderID

	s.Run("success: returns 200 OK with the cancelled order", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), orderID, s.customerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/invalid-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "order not found", commandsError: commands.ErrOrderNotFound, expectedStatus: http.StatusNotFound},
			{name: "another customer's order", commandsError: commands.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
			{name: "already collected", commandsError: commands.ErrOrderNotCancellable, expectedStatus: http.StatusConflict},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelOrder(gomock.Any(), orderID, s.customerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestCollectOrder() {
	orderID := uuid.New()
	url := "/manager/orders/" + orderID.String() + "/collect"

	b := builder.NewOrderBuilder()
	reqBody := b.BuildCollectRequestDTO()
	returnView := b.BuildView()
	returnView.ID = orderID

	s.Run("success: returns 200 OK with the collected order", func() {
		s.mockCommands.EXPECT().CollectOrder(gomock.Any(), orderID, s.restaurantID, b.PickupCode).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
	})

	s.Run("error: 400 Bad Request on bad pickup code shape", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing pickup_code", mutate: testutil.Field("pickup_code", nil)},
			{name: "short pickup_code", mutate: testutil.Field("pickup_code", "AB12")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "order not found", commandsError: commands.ErrOrderNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Order not found"},
			{name: "another restaurant's order", commandsError: commands.ErrPermissionDenied, expectedStatus: http.StatusForbidden, expectedMsg: "another restaurant"},
			{name: "wrong pickup code", commandsError: commands.ErrPickupCodeMismatch, expectedStatus: http.StatusConflict, expectedMsg: "Pickup code"},
			{name: "not collectable", commandsError: commands.ErrOrderNotCollectable, expectedStatus: http.StatusConflict, expectedMsg: "not collectable"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CollectOrder(gomock.Any(), orderID, s.restaurantID, b.PickupCode).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	returnView := builder.NewOrderBuilder().BuildView()
	returnView.ID = orderID

	s.Run("success: returns 200 OK with OrderResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customerID, orderID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
		s.Equal(returnView.PickupCode, response.PickupCode)
	})

	s.Run("error: 404 Not Found for missing order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customerID, orderID).
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 403 Forbidden for another customer's order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customerID, orderID).
			Return(nil, queries.ErrOrderAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another customer")
	})
}

func (s *OrderHandlerTestSuite) TestListMyOrders() {
	url := "/orders"

	views := []*queries.OrderView{
		builder.NewOrderBuilder().BuildView(),
		builder.NewOrderBuilder().BuildView(),
	}

	s.Run("success: returns the customer's orders", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.customerID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.customerID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
