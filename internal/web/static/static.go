// Package static embebe las imágenes y el CSS del sitio.
package static

import (
	"embed"
	"io/fs"
	"os"
	"strings"
)

//go:embed images assets
var files embed.FS

// FS devuelve dir si viene (útil para iterar el CSS sin recompilar);
// si no, los archivos embebidos.
func FS(dir string) fs.FS {
	if strings.TrimSpace(dir) != "" {
		return os.DirFS(dir)
	}
	return files
}
