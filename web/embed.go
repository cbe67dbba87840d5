// Package web serves the embedded dashboard page.
package web

import (
	"embed"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed static
var content embed.FS

// Static returns the page assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// the directory is embedded at compile time
		panic(err)
	}
	return sub
}

// Register serves the dashboard page at / and its assets under /static
func Register(e *echo.Echo) {
	assets := Static()
	e.FileFS("/", "index.html", assets)
	e.StaticFS("/static", assets)
}
