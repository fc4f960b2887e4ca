// Package stdserver serves the route table with net/http.
package stdserver

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/klauspost/compress/gzhttp"

	"github.com/jinwei/api_demo/internal/api"
	"github.com/jinwei/api_demo/internal/config"
	"github.com/jinwei/api_demo/internal/logging"
)

// Bodies shorter than minCompressSize are sent uncompressed.
const minCompressSize = 32

// NewHandler registers every route of table on a fresh ServeMux. When
// compression is set the mux is wrapped with a gzip layer that honours
// Accept-Encoding.
func NewHandler(table *api.Table, compression bool) (http.Handler, error) {
	mux := http.NewServeMux()
	for _, r := range table.Routes() {
		mux.Handle(r.Method+" "+r.Path, fixed(r))
	}
	if !compression {
		return mux, nil
	}

	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(minCompressSize))
	if err != nil {
		return nil, fmt.Errorf("gzip wrapper: %w", err)
	}
	return wrap(mux), nil
}

func fixed(r api.Route) http.Handler {
	length := strconv.Itoa(len(r.Body))
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", r.ContentType)
		w.Header().Set("Content-Length", length)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(r.Body)
	})
}

// Serve serves table on ln until the listener fails.
func Serve(ln net.Listener, table *api.Table, cfg config.Config, logger *slog.Logger) error {
	h, err := NewHandler(table, cfg.Compression)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:  h,
		ErrorLog: logging.NewLogLogger(logger),
	}
	return srv.Serve(ln)
}
