// Package hertzserver serves the route table with hertz.
package hertzserver

import (
	"context"
	"log/slog"
	"net"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/gzip"

	"github.com/jinwei/api_demo/internal/api"
	"github.com/jinwei/api_demo/internal/config"
	"github.com/jinwei/api_demo/internal/logging"
)

// New builds a hertz server for table. ln may be nil when the server is only
// driven in-process.
func New(ln net.Listener, table *api.Table, compression bool) *server.Hertz {
	opts := []hconfig.Option{
		server.WithDisablePrintRoute(true),
		server.WithHandleMethodNotAllowed(true),
	}
	if ln != nil {
		opts = append(opts, server.WithListener(ln))
	}
	h := server.New(opts...)

	if compression {
		h.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	for _, r := range table.Routes() {
		h.Handle(r.Method, r.Path, fixed(r))
	}
	return h
}

func fixed(r api.Route) app.HandlerFunc {
	return func(_ context.Context, c *app.RequestContext) {
		c.Data(consts.StatusOK, r.ContentType, r.Body)
	}
}

// Serve serves table on ln until the engine stops.
func Serve(ln net.Listener, table *api.Table, cfg config.Config, logger *slog.Logger) error {
	hlog.SetOutput(logging.Writer{Logger: logger, Level: slog.LevelInfo})
	hlog.SetLevel(hlog.LevelInfo)

	return New(ln, table, cfg.Compression).Run()
}
