package http

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
)

// The OpenAPI document is a static reflection of the route table. It is
// maintained by hand next to the routes and marshaled once.

var (
	openAPIOnce sync.Once
	openAPIDoc  []byte
)

// HandleOpenAPI serves the OpenAPI 3 document.
func HandleOpenAPI(w http.ResponseWriter, r *http.Request) {
	openAPIOnce.Do(func() {
		var err error
		openAPIDoc, err = json.Marshal(buildOpenAPIDoc())
		if err != nil {
			log.Printf("Error marshaling OpenAPI document: %v", err)
		}
	})

	if openAPIDoc == nil {
		writeError(w, http.StatusInternalServerError, "docs_unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(openAPIDoc)
}

// HandleDocs serves a minimal Swagger UI page backed by the OpenAPI document.
func HandleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(swaggerPage))
}

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
  <title>Vigil API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: "/api-docs/openapi.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`

func buildOpenAPIDoc() map[string]any {
	itemSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "format": "uuid"},
			"name":       map[string]any{"type": "string"},
			"risk_score": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"risk_level": map[string]any{"type": "string", "enum": []string{"LOW", "MEDIUM", "HIGH"}},
		},
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Vigil API",
			"version": "1.0.0",
		},
		"paths": map[string]any{
			"/health": map[string]any{
				"get": map[string]any{
					"tags":    []string{"health"},
					"summary": "Process liveness",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Service healthy",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"ok": map[string]any{"type": "boolean"},
										},
									},
								},
							},
						},
					},
				},
			},
			"/v1/items": map[string]any{
				"get": map[string]any{
					"tags":    []string{"items"},
					"summary": "List items, newest first, at most 100",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "List items",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"type": "array", "items": itemSchema},
								},
							},
						},
						"500": map[string]any{"description": "Store failure"},
					},
				},
				"post": map[string]any{
					"tags":    []string{"items"},
					"summary": "Create an item",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type":     "object",
									"required": []string{"name"},
									"properties": map[string]any{
										"name": map[string]any{"type": "string"},
									},
								},
							},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Created",
							"content": map[string]any{
								"application/json": map[string]any{"schema": itemSchema},
							},
						},
						"400": map[string]any{"description": "Invalid request"},
						"500": map[string]any{"description": "Store failure"},
					},
				},
			},
			"/metrics": map[string]any{
				"get": map[string]any{
					"tags":    []string{"observability"},
					"summary": "Prometheus metrics snapshot",
					"responses": map[string]any{
						"200": map[string]any{"description": "Prometheus text exposition"},
					},
				},
			},
		},
	}
}
