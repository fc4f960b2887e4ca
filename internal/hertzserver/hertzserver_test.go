package hertzserver

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinwei/api_demo/internal/api"
	"github.com/jinwei/api_demo/internal/config"
)

func newTable(t *testing.T) *api.Table {
	t.Helper()
	tbl, err := api.NewTable()
	require.NoError(t, err)
	return tbl
}

type response struct {
	status   int
	encoding string
	body     []byte
}

func get(t *testing.T, h *server.Hertz, path string, headers ...ut.Header) response {
	t.Helper()
	resp := ut.PerformRequest(h.Engine, consts.MethodGet, path, nil, headers...).Result()

	enc := resp.Header.Get(consts.HeaderContentEncoding)
	body := bytes.Clone(resp.Body())
	if enc == "gzip" {
		zr, err := gzip.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		body, err = io.ReadAll(zr)
		require.NoError(t, err)
	}
	return response{status: resp.StatusCode(), encoding: enc, body: body}
}

var acceptGzip = ut.Header{Key: consts.HeaderAcceptEncoding, Value: "gzip"}

func TestRoutes(t *testing.T) {
	tbl := newTable(t)
	h := New(nil, tbl, false)

	for _, r := range tbl.Routes() {
		resp := get(t, h, r.Path, acceptGzip)
		assert.Equal(t, consts.StatusOK, resp.status, r.Path)
		assert.Empty(t, resp.encoding, r.Path)
		assert.Equal(t, r.Body, resp.body, r.Path)
	}
}

func TestExactBodies(t *testing.T) {
	h := New(nil, newTable(t), false)

	assert.Equal(t,
		`{"message":"Hello world! ABCDEFGHIJKLMNOPQRSTUVWXYZ."}`,
		string(get(t, h, api.HelloWorldPath).body))
	assert.Equal(t,
		`[{"data":[{"my_string":"my complex data","my_bool":true,"my_int":144}]}]`,
		string(get(t, h, api.ComplexDataPath).body))
}

func TestRegisteredRoutesMatchDocument(t *testing.T) {
	tbl := newTable(t)
	h := New(nil, tbl, true)

	var registered []string
	for _, ri := range h.Routes() {
		assert.Equal(t, consts.MethodGet, ri.Method, ri.Path)
		registered = append(registered, ri.Path)
	}
	slices.Sort(registered)

	documented := tbl.Document().Paths.InMatchingOrder()
	slices.Sort(documented)

	assert.Equal(t, documented, registered)
}

func TestIdempotent(t *testing.T) {
	h := New(nil, newTable(t), true)
	first := get(t, h, api.DocumentPath, acceptGzip).body
	for range 3 {
		assert.Equal(t, first, get(t, h, api.DocumentPath, acceptGzip).body)
	}
}

func TestNotFound(t *testing.T) {
	h := New(nil, newTable(t), false)
	assert.Equal(t, consts.StatusNotFound, get(t, h, "/nonexistent").status)
}

func TestCompression(t *testing.T) {
	tbl := newTable(t)
	h := New(nil, tbl, true)

	for _, r := range tbl.Routes() {
		resp := get(t, h, r.Path, acceptGzip)
		assert.Equal(t, consts.StatusOK, resp.status, r.Path)
		assert.Equal(t, "gzip", resp.encoding, r.Path)
		assert.Equal(t, r.Body, resp.body, r.Path)
	}
}

func TestCompressionNeedsAcceptEncoding(t *testing.T) {
	tbl := newTable(t)
	h := New(nil, tbl, true)

	resp := get(t, h, api.HelloWorldPath)
	assert.Empty(t, resp.encoding)
	r, _ := tbl.Lookup(api.HelloWorldPath)
	assert.Equal(t, r.Body, resp.body)
}

func TestMethodNotAllowed(t *testing.T) {
	h := New(nil, newTable(t), false)
	resp := ut.PerformRequest(h.Engine, consts.MethodPost, api.HelloWorldPath, nil).Result()
	assert.Equal(t, consts.StatusMethodNotAllowed, resp.StatusCode())
}

func TestServe(t *testing.T) {
	tbl := newTable(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	t.Cleanup(func() { ln.Close() })

	cfg := config.Config{Addr: addr, Compression: true}
	go Serve(ln, tbl, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	client := &http.Client{
		Transport: &http.Transport{DisableCompression: true},
		Timeout:   time.Second,
	}
	req, err := http.NewRequest(http.MethodGet, "http://"+addr+api.ComplexDataPath, nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	// The engine starts accepting asynchronously.
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = client.Do(req)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	r, _ := tbl.Lookup(api.ComplexDataPath)
	assert.Equal(t, r.Body, body)
}
