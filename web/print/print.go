// Package print renders the printable letter layout. The letterhead and
// signature frame are static; only the identity block and the generated
// body vary per letter.
package print

import (
	"embed"
	"net/http"

	"rukun/pkg/web"
)

//go:embed templates/*.html
var templates embed.FS

// LetterView is the data rendered into the letter template. All fields are
// pre-formatted display strings.
type LetterView struct {
	Type      string
	Number    string
	Name      string
	NIK       string
	BirthInfo string
	Address   string
	Body      string
	DateLine  string
	RT        string
	RW        string
	ChairName string
}

// Renderer serves the printable letter page.
type Renderer struct {
	templates *web.TemplateSet
}

// NewRenderer parses the embedded letter templates.
func NewRenderer() (*Renderer, error) {
	ts, err := web.NewTemplateSet(templates, "templates/*.html", nil)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: ts}, nil
}

// RenderLetter writes the printable letter page.
func (r *Renderer) RenderLetter(w http.ResponseWriter, view LetterView) error {
	return r.templates.Render(w, "letter.html", view)
}
