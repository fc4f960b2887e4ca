// Command fasthttp serves the demo API with fasthttp.
//
// Usage:
//
//	fasthttp [gzip]
//
// With gzip, fasthttp only compresses bodies of at least 200 bytes, so
// /helloworld and /complexdata are always sent uncompressed and only
// /api-docs/openapi.json is compressed.
package main

import (
	"github.com/jinwei/api_demo/internal/fastserver"
	"github.com/jinwei/api_demo/internal/service"
)

func main() {
	service.Main("fasthttp", fastserver.Serve)
}
