package middleware

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
)

// SPA serves files from dir for unmatched GET and HEAD requests and falls
// back to index.html so client-side routes resolve. Unmatched /api paths
// and other methods get a JSON 404.
func SPA(dir string) gin.HandlerFunc {
	root := filepath.Clean(dir)
	index := filepath.Join(root, "index.html")

	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) ||
			p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not Found"})
			return
		}

		file := filepath.Join(root, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not Found"})
			return
		}
		c.File(index)
	}
}
