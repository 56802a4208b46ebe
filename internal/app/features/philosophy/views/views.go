// internal/app/features/philosophy/views/views.go
package philosophy

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "philosophy",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
