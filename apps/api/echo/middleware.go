package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core/session"
)

// sessionMiddleware loads the session the token was issued for.
func sessionMiddleware(svc *session.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			sess, err := svc.Get(claims.Subject)
			if err != nil {
				if errors.Cause(err) == session.ErrNotFound {
					return errSessionClosed
				}
				return errors.Wrap(err, "finding session by ID")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

// roleMiddleware restricts a route to one portal.
func roleMiddleware(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := getContextSession(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context session")
			}
			if sess.Role != role {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}

// rateLimitMiddleware throttles the mutating requests of each session.
func rateLimitMiddleware(limiter *rateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			switch ctx.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(ctx)
			}
			sess, err := getContextSession(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context session")
			}
			if !limiter.allow(sess.ID) {
				return errTooManyRequests
			}
			return next(ctx)
		}
	}
}
