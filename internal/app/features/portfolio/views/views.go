// internal/app/features/portfolio/views/views.go
package portfolio

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "portfolio",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
