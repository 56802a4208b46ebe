// Package htmlsanitize wraps the bluemonday policies this app uses for
// user-supplied input. Policies are built once; bluemonday policies are safe
// for concurrent use.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize cleans HTML meant for rendering, keeping common formatting tags
// and stripping scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// Text strips all markup. Used for contact-form fields, which are plain text
// by contract no matter what a client sends.
func Text(s string) string {
	return strict.Sanitize(s)
}
