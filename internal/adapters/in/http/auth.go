package http

import (
	"context"
	"net/http"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type identityKey struct{}

// HeaderIdentityProvider resolves the caller from headers stashed in the
// request context by IdentityMiddleware. Stands in for a session service;
// the rest of the boundary only sees the IdentityProvider port.
type HeaderIdentityProvider struct{}

// Identity returns the identity attached to ctx, or an unauthorized error.
func (HeaderIdentityProvider) Identity(ctx context.Context) (ports.Identity, error) {
	identity, ok := ctx.Value(identityKey{}).(ports.Identity)
	if !ok {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing identity")
	}
	return identity, nil
}

// IdentityMiddleware copies the X-User-Id and X-User-Role headers into the
// request context. Requests without valid headers pass through anonymously;
// role enforcement happens per route.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := kernel.UUIDFromString(c.Request().Header.Get("X-User-Id"))
			if err != nil {
				return next(c)
			}

			role := ports.Role(c.Request().Header.Get("X-User-Role"))
			switch role {
			case ports.RoleDonor, ports.RoleNgo, ports.RoleDelivery:
			default:
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), identityKey{}, ports.Identity{
				UserID: userID,
				Role:   role,
			})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// UseIdentity turns on role enforcement for role-scoped routes. With a nil
// provider every route stays open.
func (s *Server) UseIdentity(provider ports.IdentityProvider) {
	s.identity = provider
}

// requireRole rejects callers whose resolved role is not in roles. A no-op
// when no identity provider is configured.
func (s *Server) requireRole(roles ...ports.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.identity == nil {
				return next(c)
			}

			identity, err := s.identity.Identity(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Insufficient role",
			})
		}
	}
}
