package web

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer is a custom html/template renderer for Echo framework
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// Render renders a template document. Page templates that include
// layout.html are executed through the layout; standalone templates are
// executed directly.
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return fmt.Errorf("template %s not registered", name)
	}
	if tmpl.Lookup("layout.html") != nil {
		return tmpl.ExecuteTemplate(w, "layout.html", data)
	}
	return tmpl.Execute(w, data)
}
