package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academia/dashboard/core/dashboard"
	"github.com/academia/dashboard/core/report"
)

type exportApi struct {
	exporter report.Exporter
	validate *validator.Validate
}

func registerExportAPI(e *echo.Echo, app *dashboard.App, validate *validator.Validate) {
	api := exportApi{exporter: app.Exporter, validate: validate}
	e.GET("/export", api.export)
}

func (api *exportApi) export(ctx echo.Context) error {
	courseID, err := queryCourse(ctx)
	if err != nil {
		return err
	}
	req := report.ExportRequest{Kind: ctx.QueryParam("tipo"), CourseID: courseID}
	req.Clean()
	if err = api.validate.Struct(req); err != nil {
		return err
	}

	exp, err := api.exporter.Export(ctx.Request().Context(), req)
	if err != nil {
		return errors.Wrap(err, "exporting "+req.Kind)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exp.Filename))
	return ctx.Blob(http.StatusOK, exp.ContentType, exp.Body)
}
