// Package fastserver serves the route table with fasthttp.
package fastserver

import (
	"log/slog"
	"net"

	"github.com/valyala/fasthttp"

	"github.com/jinwei/api_demo/internal/api"
	"github.com/jinwei/api_demo/internal/config"
	"github.com/jinwei/api_demo/internal/logging"
)

// Name is sent in the Server header.
const Name = "api_demo"

var allowed = []byte("GET, HEAD")

// NewHandler returns a handler answering every route of table. When
// compression is set, responses are compressed with brotli, gzip or deflate
// according to Accept-Encoding; fasthttp leaves short bodies untouched.
func NewHandler(table *api.Table, compression bool) fasthttp.RequestHandler {
	routes := make(map[string]api.Route)
	for _, r := range table.Routes() {
		routes[r.Path] = r
	}

	handler := func(ctx *fasthttp.RequestCtx) {
		r, ok := routes[string(ctx.Path())]
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			return
		}
		if !ctx.IsGet() && !ctx.IsHead() {
			ctx.Response.Header.SetBytesV(fasthttp.HeaderAllow, allowed)
			ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
			return
		}
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetContentType(r.ContentType)
		ctx.SetBody(r.Body)
	}

	if !compression {
		return handler
	}
	return fasthttp.CompressHandlerBrotliLevel(handler,
		fasthttp.CompressBrotliDefaultCompression,
		fasthttp.CompressDefaultCompression)
}

// Serve serves table on ln until the listener fails.
func Serve(ln net.Listener, table *api.Table, cfg config.Config, logger *slog.Logger) error {
	srv := &fasthttp.Server{
		Handler:       NewHandler(table, cfg.Compression),
		Name:          Name,
		NoDefaultDate: true,
		Logger:        logging.Printf{Logger: logger, Level: slog.LevelWarn},
	}
	return srv.Serve(ln)
}
