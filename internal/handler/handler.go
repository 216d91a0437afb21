package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/pkg/auth0"
	mw "github.com/prency-hangers/rental-service/pkg/middleware"
	"github.com/prency-hangers/rental-service/pkg/validate"
)

type Handler struct {
	svc StorefrontService
	log *zap.Logger
}

func New(svc StorefrontService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter(auth echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log.Named("echo"))),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.GET("/products", h.ListProducts)
	api.GET("/dresses", h.ListDresses)
	api.GET("/dresses/:id", h.GetDress)
	api.GET("/jewelry", h.ListJewelry)
	api.GET("/jewelry/:id", h.GetJewelry)
	api.GET("/discounts/:code", h.GetDiscountByCode)
	api.POST("/cart/quote", h.Quote)

	authed := api.Group("", auth, h.withUser)
	authed.POST("/bookings", h.CreateBooking)
	authed.GET("/bookings", h.GetBookings)
	authed.GET("/profile", h.GetProfile)
	authed.PUT("/profile", h.UpdateProfile)

	admin := authed.Group("/admin", h.requireAdmin)
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:kind/:id", h.UpdateProduct)
	admin.DELETE("/products/:kind/:id", h.DeleteProduct)
	admin.GET("/bookings", h.ListAllBookings)
	admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
	admin.PUT("/bookings/:id/payment", h.UpdatePaymentStatus)
	admin.GET("/discounts", h.ListDiscounts)
	admin.POST("/discounts", h.CreateDiscount)
	admin.PUT("/discounts/:id", h.UpdateDiscount)
	admin.DELETE("/discounts/:id", h.DeleteDiscount)
	admin.GET("/users", h.ListUsers)
	admin.PUT("/users/:uid/role", h.UpdateUserRole)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

const appUserKey = "appUser"

// withUser mirrors the authenticated principal into the users table and
// stores the resulting AppUser on the context.
func (h *Handler) withUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := auth0.GetPrincipal(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		user, err := h.svc.EnsureUser(c.Request().Context(), appUserFromPrincipal(p))
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Set(appUserKey, user)
		return next(c)
	}
}

func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		if user.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

func currentUser(c echo.Context) (model.AppUser, error) {
	user, ok := c.Get(appUserKey).(model.AppUser)
	if !ok {
		return model.AppUser{}, errors.New("no authenticated user")
	}
	return user, nil
}

func appUserFromPrincipal(p auth0.Principal) model.AppUser {
	return model.AppUser{
		UID:         p.UID,
		Email:       p.Email,
		DisplayName: p.Name,
	}
}
