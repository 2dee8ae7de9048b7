// Package scalar serves the interactive API reference using Scalar UI.
// The page loads the OpenAPI document published by the API module.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/menu-lab/pkg/module"
)

//go:embed index.html
var indexHTML string

var page = template.Must(template.New("scalar").Parse(indexHTML))

type pageData struct {
	Title   string
	SpecURL string
}

// NewModule mounts the reference page at prefix. specURL is the path of the
// OpenAPI JSON document, such as "/api/openapi.json".
func NewModule(prefix, title, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Title: title, SpecURL: specURL}); err != nil {
		return nil, err
	}
	body := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	return module.New(prefix, mux), nil
}
