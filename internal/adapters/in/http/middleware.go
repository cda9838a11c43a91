package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/commands"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/user"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

const principalContextKey = "principal"

// Claims is the token payload issued by the external auth collaborator.
// Subject carries the user id; the profile claims are captured at signup.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`

	jwt.RegisteredClaims
}

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
}

// CurrentPrincipal returns the authenticated caller for the request.
// The second return is false on routes that skipped authentication.
func CurrentPrincipal(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalContextKey).(Principal)
	return principal, ok
}

// AuthMiddleware verifies bearer tokens and provisions local accounts.
// Identity lives with the external auth collaborator; this application only
// sees signed tokens, so an account row is created from the verified claims
// the first time a token subject shows up.
type AuthMiddleware struct {
	secret     []byte
	uowFactory commands.UserUoWFactory
	logger     *slog.Logger
}

// NewAuthMiddleware creates the authentication middleware.
// The secret is the HMAC key shared with the auth collaborator.
func NewAuthMiddleware(
	secret string,
	uowFactory commands.UserUoWFactory,
	logger *slog.Logger,
) (*AuthMiddleware, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	return &AuthMiddleware{
		secret:     []byte(secret),
		uowFactory: uowFactory,
		logger:     logger.With("component", "auth_middleware"),
	}, nil
}

// Authenticate verifies the bearer token and stores the Principal on the
// request context. Tokens with an unrecognized role claim authenticate as
// customers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization token missing")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return unauthorized(c, "Invalid authorization header format")
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "Invalid or expired token")
		}

		userID, err := kernel.UUIDFromString(claims.Subject)
		if err != nil {
			return unauthorized(c, "Invalid token subject")
		}

		role := user.ParseRole(claims.Role)
		if role == user.RoleUnknown {
			role = user.RoleCustomer
		}

		m.ensureAccount(c, userID, role, claims)

		c.Set(principalContextKey, Principal{UserID: userID, Role: role})
		return next(c)
	}
}

// RequireDispatcher gates a route on dispatch rights. Admins pass too.
func (m *AuthMiddleware) RequireDispatcher(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			return unauthorized(c, "Authorization token missing")
		}
		if principal.Role != user.RoleDispatcher && principal.Role != user.RoleAdmin {
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Dispatcher role required",
			})
		}
		return next(c)
	}
}

// ensureAccount provisions a local account row on first sight of a token
// subject. Best effort: a provisioning failure never blocks the request,
// it only means account-backed operations 404 until the claims are complete.
func (m *AuthMiddleware) ensureAccount(c echo.Context, userID kernel.UUID, role user.Role, claims *Claims) {
	ctx := c.Request().Context()

	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		m.logger.WarnContext(ctx, "Account provisioning skipped", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, userID); err == nil {
		return
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		m.logger.WarnContext(ctx, "Account lookup failed", "user_id", userID.String(), "error", err)
		return
	}

	phone, err := kernel.NewPhoneNumber(claims.Phone)
	if err != nil {
		m.logger.WarnContext(ctx, "Account provisioning skipped, no phone claim",
			"user_id", userID.String())
		return
	}

	account, err := user.NewUser(userID, claims.Name, claims.Email, phone, role)
	if err != nil {
		m.logger.WarnContext(ctx, "Account provisioning failed, incomplete claims",
			"user_id", userID.String(), "error", err)
		return
	}

	if err := uow.UserRepository().Add(ctx, account); err != nil {
		m.logger.WarnContext(ctx, "Account provisioning failed", "user_id", userID.String(), "error", err)
		return
	}

	if err := uow.Commit(ctx); err != nil {
		m.logger.WarnContext(ctx, "Account provisioning commit failed", "user_id", userID.String(), "error", err)
		return
	}

	m.logger.InfoContext(ctx, "Account provisioned", "user_id", userID.String(), "role", role.String())
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
