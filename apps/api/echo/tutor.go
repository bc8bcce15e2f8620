package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/tutor"
)

func registerTutorAPI(g *echo.Group) {
	g.GET("/landing", landing)
	g.GET("/personas", queryPersonas)
	g.GET("/subjects", querySubjects)
	g.GET("/search", search)
}

func landing(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, classroom.NewLanding())
}

func queryPersonas(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, tutor.Personas)
}

func querySubjects(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, tutor.Subjects)
}

func search(ctx echo.Context) error {
	var query SearchQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to SearchQuery")
	}
	return ctx.JSON(http.StatusOK, tutor.Search(query.Q))
}
