// internal/app/features/housemodels/views/views.go
package housemodels

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "housemodels",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
