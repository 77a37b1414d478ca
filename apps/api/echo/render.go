package echoapi

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/academia/dashboard/fs"
)

const webTemplates = "templates/web/*.gohtml"

type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{templates: template.Must(template.ParseFS(appfs.FS, webTemplates))}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
