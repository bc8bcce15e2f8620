package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/session"
)

type (
	studioApi struct {
		validate *validator.Validate
	}

	UploadResponse struct {
		Pending  bool               `json:"pending"`
		Material classroom.Material `json:"material"`
	}
)

func registerStudioAPI(sg *echo.Group, deps ServerDeps) {
	api := studioApi{validate: deps.Validate}
	teacher := roleMiddleware(session.RoleTeacher)

	sg.GET("/library", api.library, teacher)
	sg.POST("/materials", api.upload, teacher)
	sg.GET("/materials", api.uploads, teacher)
	sg.POST("/generations", api.generate, teacher)
	sg.GET("/generations", api.generation, teacher)
	sg.POST("/generations/assign", api.assign, teacher)
}

func getContextStudio(ctx echo.Context) (*classroom.Studio, error) {
	sess, err := getContextSession(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting context session")
	}
	if sess.Studio == nil {
		return nil, errHttpForbidden
	}
	return sess.Studio, nil
}

// Handlers

func (api *studioApi) library(ctx echo.Context) error {
	studio, err := getContextStudio(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, studio.Library())
}

func (api *studioApi) upload(ctx echo.Context) error {
	studio, err := getContextStudio(ctx)
	if err != nil {
		return err
	}

	var data classroom.NewMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMaterial")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	mat, err := studio.Upload(data)
	if err != nil {
		return errors.Wrap(err, "uploading material")
	}
	return ctx.JSON(http.StatusAccepted, UploadResponse{Pending: true, Material: mat})
}

func (api *studioApi) uploads(ctx echo.Context) error {
	studio, err := getContextStudio(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, studio.Uploads())
}

func (api *studioApi) generate(ctx echo.Context) error {
	studio, err := getContextStudio(ctx)
	if err != nil {
		return err
	}

	var data classroom.GenerateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := studio.Generate(data); err != nil {
		return errors.Wrap(err, "generating content")
	}
	return ctx.JSON(http.StatusAccepted, studio.Generation())
}

func (api *studioApi) generation(ctx echo.Context) error {
	studio, err := getContextStudio(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, studio.Generation())
}

func (api *studioApi) assign(ctx echo.Context) error {
	studio, err := getContextStudio(ctx)
	if err != nil {
		return err
	}
	notice, err := studio.Assign()
	if err != nil {
		return errors.Wrap(err, "assigning content")
	}
	return ctx.JSON(http.StatusOK, notice)
}
