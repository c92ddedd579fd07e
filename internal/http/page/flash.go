package page

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// FlashCookie: имя cookie одноразового сообщения.
const FlashCookie = "flash"

// Категории сообщений, совпадают с CSS‑классами шаблонов.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash: сообщение, показываемое один раз на следующей странице.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// SetFlash сохраняет сообщение до следующего запроса.
func SetFlash(w http.ResponseWriter, category, message string) {
	data, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash читает сообщение и удаляет cookie. Повреждённая cookie игнорируется.
func PopFlash(w http.ResponseWriter, r *http.Request) []Flash {
	c, err := r.Cookie(FlashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return []Flash{f}
}

// Redirect выставляет сообщение и перенаправляет на url.
func Redirect(w http.ResponseWriter, r *http.Request, url, category, message string) {
	if message != "" {
		SetFlash(w, category, message)
	}
	http.Redirect(w, r, url, http.StatusFound)
}
