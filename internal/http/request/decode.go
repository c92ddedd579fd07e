// Package request разбирает тела входящих запросов.
package request

import (
	"io"
	"net/http"

	"github.com/ajg/form"
	"github.com/go-chi/render"
)

// Decode разбирает тело по Content-Type так же, как render.DefaultDecoder,
// но неизвестные поля формы пропускаются, как и в JSON.
func Decode(r *http.Request, v any) error {
	if render.GetRequestContentType(r) != render.ContentTypeForm {
		return render.DefaultDecoder(r, v)
	}

	defer io.Copy(io.Discard, r.Body) //nolint:errcheck
	d := form.NewDecoder(r.Body)
	d.IgnoreUnknownKeys(true)
	return d.Decode(v)
}
