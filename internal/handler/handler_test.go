package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/handler"
	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/internal/rental"
	"github.com/prency-hangers/rental-service/pkg/validate"

	service_mocks "github.com/prency-hangers/rental-service/internal/handler/mocks"
)

func TestHandler_GetJewelry(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockStorefrontService, id string)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			id:   "0b7aa2a1-67ab-4f5c-a352-7a4d39a4ad91",
			mockBehavior: func(r *service_mocks.MockStorefrontService, id string) {
				r.EXPECT().
					GetJewelry(context.Background(), id).
					Return(model.Product{
						ID:               id,
						Kind:             model.KindJewelry,
						Name:             "Pearl Cascade Set",
						JewelryType:      "necklace",
						Price:            500,
						ImageURL:         "https://img.example/pearl.jpg",
						Images:           pq.StringArray{"https://img.example/pearl.jpg"},
						Description:      "Freshwater pearls",
						Hint:             "pearl cascade",
						Availability:     true,
						UnavailableDates: pq.StringArray{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"0b7aa2a1-67ab-4f5c-a352-7a4d39a4ad91","kind":"jewelry","name":"Pearl Cascade Set","type":"necklace","price":500,"imageUrl":"https://img.example/pearl.jpg","images":["https://img.example/pearl.jpg"],"description":"Freshwater pearls","hint":"pearl cascade","availability":true,"unavailableDates":[]}`,
			},
		},
		{
			name: "err. not found",
			id:   "c80a02dc-b208-4a60-9ed9-3a22a9cbdd9a",
			mockBehavior: func(r *service_mocks.MockStorefrontService, id string) {
				r.EXPECT().
					GetJewelry(context.Background(), id).
					Return(model.Product{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			id:   "c80a02dc-b208-4a60-9ed9-3a22a9cbdd9a",
			mockBehavior: func(r *service_mocks.MockStorefrontService, id string) {
				r.EXPECT().
					GetJewelry(context.Background(), id).
					Return(model.Product{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
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
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/jewelry/:id", h.GetJewelry)

			r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/jewelry/%s", tt.id), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Quote(t *testing.T) {
	t.Parallel()
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
			body: `{"items":[{"productId":"p1","rentalFrom":"2024-05-01","rentalTo":"2024-05-03"}],"discountCode":"FLAT200","deliveryCity":"Indore","deliveryZip":"452001"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {
				r.EXPECT().
					Quote(context.Background(), gomock.Any()).
					Return(model.Quote{
						Subtotal:        3000,
						Taxes:           0,
						ShippingFee:     150,
						Deliverable:     true,
						SecurityDeposit: 2000,
						DiscountAmount:  200,
						Total:           4950,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"subtotal":3000,"taxes":0,"shippingFee":150,"deliverable":true,"securityDeposit":2000,"discountAmount":200,"total":4950}`,
			},
		},
		{
			name: "err. min order not met",
			body: `{"items":[{"productId":"p1"}],"discountCode":"FLAT200"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {
				r.EXPECT().
					Quote(context.Background(), gomock.Any()).
					Return(model.Quote{}, rental.ErrMinOrderNotMet)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"minimum order amount not met"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. empty items",
			body:         `{"items":[]}`,
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
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/cart/quote", h.Quote)

			r := httptest.NewRequest(http.MethodPost, "/cart/quote", strings.NewReader(tt.body))
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

func TestHandler_UpdateBookingStatus(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockStorefrontService)

	var tests = []struct {
		name         string
		id           string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "illegal transition",
			id:   "b1",
			body: `{"status":"returned"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {
				r.EXPECT().
					UpdateBookingStatus(context.Background(), "b1", model.StatusReturned).
					Return(model.Booking{}, errors.Wrap(rental.ErrIllegalTransition, "confirmed -> returned"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"confirmed -> returned: illegal booking status transition"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			id:   "missing",
			body: `{"status":"confirmed"}`,
			mockBehavior: func(r *service_mocks.MockStorefrontService) {
				r.EXPECT().
					UpdateBookingStatus(context.Background(), "missing", model.StatusConfirmed).
					Return(model.Booking{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
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
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PUT("/admin/bookings/:id/status", h.UpdateBookingStatus)

			r := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/admin/bookings/%s/status", tt.id), strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
