package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/pkg/validate"

	service_mocks "github.com/prency-hangers/rental-service/internal/handler/mocks"
)

// asUser injects an authenticated AppUser the way withUser does after the
// identity provider middleware has run.
func asUser(user model.AppUser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appUserKey, user)
			return next(c)
		}
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	customer := model.AppUser{
		UID:         "uid-1",
		Email:       "maya@example.com",
		DisplayName: "Maya",
		Role:        model.RoleCustomer,
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockStorefrontService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"productId":"p1","productKind":"dress","rentalFrom":"2024-05-01","rentalTo":"2024-05-03","transactionId":"TXN-12345","deliveryCity":"Indore","deliveryZip":"452001"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {
				r.EXPECT().
					CreateBooking(context.Background(), customer, gomock.Any()).
					Return(model.Booking{
						ID:            "b1",
						UserID:        "uid-1",
						ProductID:     "p1",
						ProductKind:   model.KindDress,
						ProductName:   "Scarlet Gown",
						ProductImage:  "https://img.example/gown.jpg",
						Status:        model.StatusPendingPayment,
						PaymentStatus: model.PaymentPending,
						TotalAmount:   5150,
						TransactionID: "TXN-12345",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"b1","userId":"uid-1","productId":"p1","productKind":"dress","productName":"Scarlet Gown","productImage":"https://img.example/gown.jpg","rentalFrom":"0001-01-01T00:00:00Z","rentalTo":"0001-01-01T00:00:00Z","status":"pending payment","paymentStatus":"pending","totalAmount":5150,"transactionId":"TXN-12345","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. dates taken",
			body: `{"productId":"p1","productKind":"dress","rentalFrom":"2024-05-01","rentalTo":"2024-05-03","transactionId":"TXN-12345","deliveryCity":"Indore","deliveryZip":"452001"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {
				r.EXPECT().
					CreateBooking(context.Background(), customer, gomock.Any()).
					Return(model.Booking{}, errors.Wrap(errs.ErrDatesUnavailable, "2024-05-02"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"2024-05-02: requested dates are no longer available"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. missing transaction id",
			body:         `{"productId":"p1","productKind":"dress","rentalFrom":"2024-05-01","rentalTo":"2024-05-03","deliveryCity":"Indore","deliveryZip":"452001"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockStorefrontService(c)
			log := zap.NewExample().Named("test")
			h := New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/bookings", h.CreateBooking, asUser(customer))

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetBookings_Unauthorized(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockStorefrontService(c)
	h := New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.GET("/bookings", h.GetBookings)

	r := httptest.NewRequest(http.MethodGet, "/bookings", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
