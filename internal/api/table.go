// Package api declares the routes served by every frontend together with
// their fixed bodies and the OpenAPI document generated from them.
package api

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
)

// Paths of the registered routes.
const (
	HelloWorldPath  = "/helloworld"
	ComplexDataPath = "/complexdata"
	DocumentPath    = "/api-docs/openapi.json"
)

// ContentTypeJSON is the content type of every route body.
const ContentTypeJSON = "application/json"

// Route is a GET endpoint answered with a fixed body.
type Route struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	// Description documents the 200 response.
	Description string
	ContentType string
	Body        []byte
	Schema      *openapi3.Schema
}

// Table is the immutable route table. It is safe for concurrent use.
type Table struct {
	routes  []Route
	doc     *openapi3.T
	docJSON []byte
}

// NewTable renders the fixed payloads and the schema document.
func NewTable() (*Table, error) {
	hello, err := json.Marshal(helloPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", HelloWorldPath, err)
	}
	complexData, err := json.Marshal(complexPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", ComplexDataPath, err)
	}

	routes := []Route{
		{
			Method:      http.MethodGet,
			Path:        DocumentPath,
			OperationID: "openapi",
			Summary:     "Return JSON version of an OpenAPI schema",
			Description: "JSON file",
			ContentType: ContentTypeJSON,
			Schema:      documentSchema(),
		},
		{
			Method:      http.MethodGet,
			Path:        HelloWorldPath,
			OperationID: "helloworld",
			Summary:     "Return hello world!",
			Description: "Hello world!",
			ContentType: ContentTypeJSON,
			Body:        hello,
			Schema:      helloSchema(),
		},
		{
			Method:      http.MethodGet,
			Path:        ComplexDataPath,
			OperationID: "complexdata",
			Summary:     "Return a fixed list of structured records",
			Description: "Complex data",
			ContentType: ContentTypeJSON,
			Body:        complexData,
			Schema:      complexListSchema(),
		},
	}

	doc := BuildDocument(routes)
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", DocumentPath, err)
	}
	routes[0].Body = docJSON

	return &Table{
		routes:  routes,
		doc:     doc,
		docJSON: docJSON,
	}, nil
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	return slices.Clone(t.routes)
}

// Lookup returns the route registered at path.
func (t *Table) Lookup(path string) (Route, bool) {
	i := slices.IndexFunc(t.routes, func(r Route) bool { return r.Path == path })
	if i < 0 {
		return Route{}, false
	}
	return t.routes[i], true
}

// Document returns the schema document. Callers must not modify it.
func (t *Table) Document() *openapi3.T { return t.doc }

// DocumentJSON returns the rendered schema document.
func (t *Table) DocumentJSON() []byte { return slices.Clone(t.docJSON) }
