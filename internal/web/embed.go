// Package web встраивает HTML‑шаблоны страниц в бинарник.
package web

import "embed"

// TemplatesFS содержит шаблоны для серверной отрисовки.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
