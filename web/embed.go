// Package web embeds the static site shell served alongside the JSON API.
package web

import "embed"

//go:embed index.html assets
var FS embed.FS
