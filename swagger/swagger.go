// Package swagger serves the OpenAPI document and a Swagger UI page for it.
package swagger

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed swagger-ui/*
var content embed.FS

// GetHandler serves index.html and openapi.yaml from the embedded swagger-ui directory.
func GetHandler() (http.Handler, error) {
	subFS, err := fs.Sub(content, "swagger-ui")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded swagger-ui: %w", err)
	}

	return http.FileServer(http.FS(subFS)), nil
}

// Spec returns the raw OpenAPI document.
func Spec() ([]byte, error) {
	return content.ReadFile("swagger-ui/openapi.yaml")
}
