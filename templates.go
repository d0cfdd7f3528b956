package worldclock

import (
	"io/fs"

	"github.com/goliatone/go-worldclock/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in host page templates so callers can
// copy or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// AssetsFS exposes the embedded stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(worldclock.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return page.AssetsFS()
}
