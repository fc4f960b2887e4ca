// Command hertz serves the demo API with hertz.
//
// Usage:
//
//	hertz [gzip]
package main

import (
	"github.com/jinwei/api_demo/internal/hertzserver"
	"github.com/jinwei/api_demo/internal/service"
)

func main() {
	service.Main("hertz", hertzserver.Serve)
}
