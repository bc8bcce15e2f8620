package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/session"
)

type (
	sessionApi struct {
		conf     *core.Config
		svc      *session.Service
		jwtConf  middleware.JWTConfig
		validate *validator.Validate
	}

	OpenSessionResponse struct {
		Session session.Info `json:"session"`
		Token   string       `json:"token"`
	}
)

// registerSessionAPI registers the session endpoints and returns the group of the routes bound to a session.
func registerSessionAPI(g *echo.Group, jwtConf middleware.JWTConfig, limiter *rateLimiter, deps ServerDeps) *echo.Group {
	api := sessionApi{
		conf:     deps.Conf,
		svc:      deps.SessionSvc,
		jwtConf:  jwtConf,
		validate: deps.Validate,
	}

	// TODO: rate limit `/sessions` per client IP
	g.POST("/sessions", api.open)

	sg := g.Group("/session", middleware.JWTWithConfig(jwtConf), sessionMiddleware(api.svc), rateLimitMiddleware(limiter))
	sg.GET("", api.retrieve)
	sg.DELETE("", api.close)
	sg.GET("/dashboard", api.dashboard)
	return sg
}

// Handlers

func (api *sessionApi) open(ctx echo.Context) error {
	var data OpenSessionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to OpenSessionRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := api.svc.Open(data.Role)
	if err != nil {
		return errors.Wrap(err, "opening session")
	}
	token, err := GenerateToken(GetSessionClaims(sess, api.conf), api.jwtConf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusCreated, OpenSessionResponse{Session: sess.Info(), Token: token})
}

func (api *sessionApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Info())
}

func (api *sessionApi) close(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if err := api.svc.Close(sess.ID); err != nil {
		return errors.Wrap(err, "closing session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) dashboard(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Dashboard())
}
