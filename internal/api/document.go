package api

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document metadata.
const (
	Title   = "api_demo"
	Version = "0.1.0"
)

// BuildDocument assembles an OpenAPI 3 document from routes. Every route
// becomes one operation with a single 200 response carrying its schema, so
// the document lists exactly the routes that are served.
func BuildDocument(routes []Route) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   Title,
			Version: Version,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, r := range routes {
		resp := openapi3.NewResponse().
			WithDescription(r.Description).
			WithContent(openapi3.NewContentWithSchema(r.Schema, []string{r.ContentType}))

		op := openapi3.NewOperation()
		op.OperationID = r.OperationID
		op.Summary = r.Summary
		op.Responses = openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: resp}),
		)

		item := doc.Paths.Value(r.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(r.Path, item)
		}
		item.SetOperation(r.Method, op)
	}

	return doc
}
