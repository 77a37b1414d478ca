package echoapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
)

const (
	searchParam  = "search"
	confirmParam = "confirm"
	courseParam  = "id_curso"
)

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryCourse reads the optional `id_curso` query param. Empty means no filter.
func queryCourse(ctx echo.Context) (null.Int, error) {
	raw := strings.TrimSpace(ctx.QueryParam(courseParam))
	if raw == "" {
		return null.Int{}, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return null.Int{}, echo.NewHTTPError(http.StatusBadRequest, map[string]string{courseParam: "must be a number"})
	}
	return null.IntFrom(id), nil
}

// confirmation turns the `confirm` query param into the answer to the delete prompt.
func confirmation(ctx echo.Context) academic.Confirmer {
	ok, _ := strconv.ParseBool(ctx.QueryParam(confirmParam))
	return academic.ConfirmFunc(func(string) bool { return ok })
}

type messageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
