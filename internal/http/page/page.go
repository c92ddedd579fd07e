// Package page отрисовывает HTML‑страницы из шаблонов и хранит одноразовые
// flash‑сообщения в cookie.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/render"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const layoutFile = "layout.html"

// Data: общие данные страницы. View: данные конкретного шаблона.
type Data struct {
	Title   string
	Session *models.Session
	Flashes []Flash
	View    any
}

// Renderer хранит разобранные шаблоны страниц, каждая вместе с общим layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return models.Unknown
		}
		return t.Format("2006-01-02 15:04")
	},
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict: odd number of arguments")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
			}
			m[key] = kv[i+1]
		}
		return m, nil
	},
}

// NewRenderer разбирает templates/*.html из fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	const op = "page.NewRenderer"

	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		name := path.Base(f)
		if name == layoutFile {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, "templates/"+layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, name, err)
		}
		r.pages[name] = t
	}
	if len(r.pages) == 0 {
		return nil, fmt.Errorf("%s: no templates found", op)
	}
	return r, nil
}

// Render отрисовывает страницу name со статусом status.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, data Data) error {
	const op = "page.Render"

	t, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("%s: unknown page %q", op, name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("%s: %s: %w", op, name, err)
	}
	render.Status(r, status)
	render.HTML(w, r, buf.String())
	return nil
}

// WantsJSON сообщает, что клиент просит JSON вместо страницы.
func WantsJSON(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeJSON
}
