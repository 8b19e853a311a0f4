//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	domcheckout "maison-storefront/internal/domain/checkout"
	"maison-storefront/internal/domain/payment"
	"maison-storefront/internal/handler/api"
	"maison-storefront/internal/handler/middleware"
	resdto "maison-storefront/internal/handler/dto/response"
	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/clock"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/tests/common/builder"
	"maison-storefront/tests/common/httptest"
	"maison-storefront/tests/common/testutil"
	commandsmock "maison-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	sessionMw := middleware.NewSessionMiddleware(
		config.NewTestConfig().Session,
		clock.NewMockClock(time.UnixMilli(1726000000000)),
	)

	checkout := s.router.Group("/api/checkout", sessionMw.EnsureSession())
	checkout.PUT("/shipping", s.handler.SaveShipping)
	checkout.PUT("/payment", s.handler.SavePayment)
	checkout.GET("/review", s.handler.Review)
	checkout.POST("/promo", s.handler.ApplyPromo)
	checkout.POST("/pay", s.handler.Pay)
	checkout.POST("/verify", s.handler.VerifyPayment)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestSaveShipping() {
	url := "/api/checkout/shipping"

	reqBody := builder.NewCheckoutBuilder().BuildShippingRequestDTO()
	expectedDraft := builder.NewCheckoutBuilder().BuildShippingDraft()

	s.Run("success: advances to the payment stage", func() {
		s.mockCommands.EXPECT().SaveShipping(gomock.Any(), testSessionKey, expectedDraft).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, testSessionKey)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("payment", body["stage"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing full_name", mutate: testutil.Field("full_name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "full_name too long", mutate: testutil.Field("full_name", strings.Repeat("a", 121))},
			{name: "postal_code too long", mutate: testutil.Field("postal_code", strings.Repeat("1", 21))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, testSessionKey)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestSavePayment() {
	url := "/api/checkout/payment"
	reqBody := map[string]string{"method": domcheckout.MethodPaystack}

	s.Run("success: advances to the review stage", func() {
		s.mockCommands.EXPECT().SavePayment(gomock.Any(), testSessionKey, domcheckout.PaymentDraft{Method: domcheckout.MethodPaystack}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, testSessionKey)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("review", body["stage"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shipping not completed",
				commandsError:  domcheckout.ErrShippingIncomplete,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Complete the shipping step first",
			},
			{
				name:           "unsupported method",
				commandsError:  commands.ErrUnsupportedPaymentMethod,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unsupported payment method",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to save payment method",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SavePayment(gomock.Any(), testSessionKey, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, testSessionKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request when method is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{}, testSessionKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CheckoutHandlerTestSuite) TestReview() {
	url := "/api/checkout/review"

	b := builder.NewCheckoutBuilder()
	summary := &commands.ReviewSummary{
		Shipping: b.BuildShippingDraft(),
		Payment:  b.BuildPaymentDraft(),
		Cart:     builder.BuildSnapshot(builder.NewCartItemBuilder().WithQuantity(2).BuildDomain()),
		Totals:   domcheckout.Totals{Subtotal: 15000, Shipping: 1200, Tax: 1200, Total: 17400},
	}

	s.Run("success: returns the order summary", func() {
		s.mockCommands.EXPECT().Review(gomock.Any(), testSessionKey, "").
			Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testSessionKey)

		var response resdto.ReviewSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ama Mensah", response.Shipping.FullName)
		s.Equal("174.00", response.Totals.Total)
		s.Nil(response.Promo)
	})

	s.Run("success: promo code is forwarded from the query string", func() {
		withPromo := *summary
		withPromo.Promo = b.BuildPromoResult()
		s.mockCommands.EXPECT().Review(gomock.Any(), testSessionKey, "WELCOME10").
			Return(&withPromo, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?promo_code=WELCOME10", nil, testSessionKey)

		var response resdto.ReviewSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Promo)
		s.Equal("WELCOME10", response.Promo.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shipping not completed",
				commandsError:  domcheckout.ErrShippingIncomplete,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Complete the shipping step first",
			},
			{
				name:           "payment not chosen",
				commandsError:  domcheckout.ErrPaymentNotChosen,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Choose a payment method first",
			},
			{
				name:           "invalid promo",
				commandsError:  commands.ErrInvalidPromo,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid or expired promo code",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Review(gomock.Any(), testSessionKey, "").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testSessionKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestApplyPromo() {
	url := "/api/checkout/promo"
	reqBody := map[string]string{"code": "WELCOME10"}

	s.Run("success: returns 200 OK for a valid code", func() {
		s.mockCommands.EXPECT().ApplyPromo(gomock.Any(), testSessionKey, "WELCOME10").
			Return(builder.NewCheckoutBuilder().BuildPromoResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionKey)

		var response resdto.PromoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal("10.00", response.Discount)
	})

	s.Run("error: 400 Bad Request with the backend message for a rejected code", func() {
		s.mockCommands.EXPECT().ApplyPromo(gomock.Any(), testSessionKey, "WELCOME10").
			Return(&commands.PromoResult{Code: "WELCOME10", Valid: false, Message: "This promo code has expired"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionKey)

		s.Equal(http.StatusBadRequest, rec.Code)
		var response resdto.PromoResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &response))
		s.False(response.Valid)
		s.Equal("This promo code has expired", response.Message)
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, testSessionKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Promo code is required")
	})
}

func (s *CheckoutHandlerTestSuite) TestPay() {
	url := "/api/checkout/pay"

	result := &commands.PayResult{
		OrderID:   "42",
		Reference: "PAY-42-1726000000000",
		Inline: payment.NewInlinePayload(
			"pk_test_abc", "ama@example.com", "GHS", 17400, "PAY-42-1726000000000",
			payment.Metadata{OrderID: "42", CustomerName: "Ama Mensah", ItemsCount: 2},
		),
		Totals: domcheckout.Totals{Subtotal: 15000, Shipping: 1200, Tax: 1200, Total: 17400},
	}

	s.Run("success: returns 201 Created with the payment payload", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), testSessionKey, "", "").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, testSessionKey)

		var response resdto.PayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("42", response.OrderID)
		s.Equal("pk_test_abc", response.Inline.PublicKey)
		s.Equal(int64(17400), response.Inline.Amount)
		s.Equal([]string{"card", "bank", "mobile_money"}, response.Inline.Channels)
		s.False(response.OrderReused)
	})

	s.Run("success: promo code and callback URL are forwarded", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), testSessionKey, "WELCOME10", "https://shop.example/checkout/done").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"promo_code": "WELCOME10", "callback_url": "https://shop.example/checkout/done"}, testSessionKey)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request for a malformed callback URL", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"callback_url": "not a url"}, testSessionKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shipping not completed",
				commandsError:  domcheckout.ErrShippingIncomplete,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Complete the shipping step first",
			},
			{
				name:           "payment not chosen",
				commandsError:  domcheckout.ErrPaymentNotChosen,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Choose a payment method first",
			},
			{
				name:           "empty cart",
				commandsError:  domcheckout.ErrCartEmpty,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "invalid promo",
				commandsError:  commands.ErrInvalidPromo,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid or expired promo code",
			},
			{
				name:           "payment provider not configured",
				commandsError:  commands.ErrPaymentNotConfigured,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Payment is temporarily unavailable",
			},
			{
				name:           "backend unreachable",
				commandsError:  gatewayErr(infra.KindUnreachable),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Storefront backend is unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Pay(gomock.Any(), testSessionKey, "", "").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, testSessionKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestVerifyPayment() {
	url := "/api/checkout/verify"
	reqBody := map[string]string{"reference": "PAY-42-1726000000000"}

	s.Run("success: returns the settled order", func() {
		s.mockCommands.EXPECT().VerifyPayment(gomock.Any(), testSessionKey, "PAY-42-1726000000000").
			Return(&commands.PaymentVerification{OrderID: "42", Amount: 17400, Status: "success"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionKey)

		var response resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("42", response.OrderID)
		s.Equal("174.00", response.Amount)
		s.Equal("success", response.Status)
	})

	s.Run("error: 400 Bad Request on a declined payment", func() {
		s.mockCommands.EXPECT().VerifyPayment(gomock.Any(), testSessionKey, "PAY-42-1726000000000").
			Return(nil, commands.ErrPaymentVerificationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment verification failed")
	})

	s.Run("error: 502 Bad Gateway when verification cannot reach the backend", func() {
		s.mockCommands.EXPECT().VerifyPayment(gomock.Any(), testSessionKey, "PAY-42-1726000000000").
			Return(nil, gatewayErr(infra.KindUnreachable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Storefront backend is unavailable")
	})

	s.Run("error: 400 Bad Request when reference is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, testSessionKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment reference is required")
	})
}
