package auth0

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	principalKey = "authPrincipal"

	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

type (
	Config struct {
		Issuer   string `yaml:"issuer" envconfig:"AUTH0_DOMAIN"`
		Audience string `yaml:"audience" envconfig:"AUTH0_AUDIENCE"`
	}

	// Principal is the authenticated identity the storefront trusts,
	// mirrored straight from the identity provider's token.
	Principal struct {
		UID   string
		Email string
		Name  string
	}
)

// CustomClaims contains the profile data we want from the token.
type CustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// MiddleWareWithConfig validates RS256 bearer tokens against the tenant's
// JWKS and stores the resulting Principal on the echo context.
func MiddleWareWithConfig(cfg Config) echo.MiddlewareFunc {
	issuerURL, err := url.Parse("https://" + cfg.Issuer + "/")
	if err != nil {
		log.Fatalf("Failed to parse the issuer url: %v", err)
	}
	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims { return &CustomClaims{} }),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("Failed to set up the jwt validator")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(AuthorizationHeader)
			if authorization == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
			}
			if !strings.HasPrefix(authorization, bearer) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
			}

			token := strings.TrimPrefix(authorization, bearer)

			claims, err := jwtValidator.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Token")
			}

			validated := claims.(*validator.ValidatedClaims)
			p := Principal{UID: validated.RegisteredClaims.Subject}
			if cc, ok := validated.CustomClaims.(*CustomClaims); ok {
				p.Email = cc.Email
				p.Name = cc.Name
			}
			SetPrincipal(c, p)

			return next(c)
		}
	}
}

func SetPrincipal(c echo.Context, p Principal) {
	c.Set(principalKey, p)
}

func GetPrincipal(c echo.Context) (Principal, error) {
	p, ok := c.Get(principalKey).(Principal)
	if !ok || p.UID == "" {
		return Principal{}, errors.New("no authenticated principal")
	}
	return p, nil
}
