package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/pkg/format"
)

//go:embed views
var viewsFS embed.FS

const layout = "layouts/main"

// NewViews motor de templates con las vistas embebidas y los formateadores pt-BR.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"moeda":    format.Money,
		"numero":   format.Number,
		"inteiro":  format.Int,
		"data":     format.Date,
		"dataHora": format.DateTime,
		"chaves":   screens.SortedKeys,
	})
	return engine
}

// render agrega al mapa el usuario y la sección activa y renderiza con el layout.
func render(c *fiber.Ctx, view, active string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if auth := GetAuthority(c); auth != nil {
		data["User"] = auth.CurrentUser()
	}
	data["Active"] = active
	return c.Render(view, data, layout)
}
