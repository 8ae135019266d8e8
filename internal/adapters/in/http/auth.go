package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
)

const (
	msgAuthorizationRequired = "Authorization header required"
	msgInvalidToken          = "Invalid token"
)

// AuthConfig configures bearer token checks. With an empty JWTSecret only
// the presence of the Authorization header is enforced.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

// RequireBearer returns the middleware chain guarding the order routes.
//
// Example:
//
//	auth, err := http.RequireBearer(http.AuthConfig{JWTSecret: secret, Issuer: iss, Audience: "authenticated"})
//	if err != nil {
//	    return err
//	}
//	orders := e.Group("/api/orders", auth...)
func RequireBearer(cfg AuthConfig) ([]echo.MiddlewareFunc, error) {
	chain := []echo.MiddlewareFunc{requireAuthorizationHeader}
	if cfg.JWTSecret == "" {
		return chain, nil
	}

	secret := []byte(cfg.JWTSecret)
	jwtValidator, err := validator.New(
		func(context.Context) (interface{}, error) { return secret, nil },
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(invalidTokenHandler),
	)

	return append(chain, echo.WrapMiddleware(mw.CheckJWT)), nil
}

// TokenSubject returns the subject of a verified token, or "" when tokens are not verified.
func TokenSubject(ctx echo.Context) string {
	claims, ok := ctx.Request().Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok {
		return ""
	}
	return claims.RegisteredClaims.Subject
}

func requireAuthorizationHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderAuthorization)) == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgAuthorizationRequired})
		}
		return next(ctx)
	}
}

func invalidTokenHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.WarnContext(r.Context(), "rejected bearer token", slog.Any("err", err))

	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusUnauthorized)
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{Error: msgInvalidToken}); encodeErr != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", slog.Any("err", encodeErr))
	}
}
