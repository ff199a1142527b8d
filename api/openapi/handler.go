// Package openapi serves the API's OpenAPI 3.1 document and a Swagger UI.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

const (
	uiPath   = "/swagger/index.html"
	jsonPath = "/swagger/swagger.json"
	yamlPath = "/swagger/swagger.yaml"
)

var uiPage = fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>LocalFlipper API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: %q, dom_id: "#swagger-ui", layout: "BaseLayout",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset]});
  </script>
</body>
</html>`, jsonPath)

// renderer encodes the document in one wire format.
type renderer func(huma.API) ([]byte, error)

// RegisterRoutes mounts the document and the UI on e. The document is
// rendered per request from api, so register this after the operations.
func RegisterRoutes(e *echo.Echo, api huma.API) {
	docs := []struct {
		path        string
		contentType string
		render      renderer
	}{
		{jsonPath, echo.MIMEApplicationJSON, Document},
		{yamlPath, "text/yaml", DocumentYAML},
	}
	for _, d := range docs {
		e.GET(d.path, serveDocument(api, d.contentType, d.render))
	}

	e.GET(uiPath, func(c echo.Context) error { return c.HTML(http.StatusOK, uiPage) })
	for _, alias := range []string{"/swagger", "/swagger/"} {
		e.GET(alias, func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, uiPath)
		})
	}
}

// Document renders the OpenAPI document as indented JSON.
func Document(api huma.API) ([]byte, error) {
	data, err := json.MarshalIndent(api.OpenAPI(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}
	return data, nil
}

// DocumentYAML renders the OpenAPI document as YAML. It round-trips the
// JSON form so field names follow the json tags.
func DocumentYAML(api huma.API) ([]byte, error) {
	data, err := Document(api)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding openapi document: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi yaml: %w", err)
	}
	return out, nil
}

func serveDocument(api huma.API, contentType string, render renderer) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := render(api)
		if err != nil {
			c.Logger().Errorf("rendering openapi document: %v", err)
			return c.String(http.StatusInternalServerError, "spec unavailable")
		}
		return c.Blob(http.StatusOK, contentType, body)
	}
}
