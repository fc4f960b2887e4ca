// Command std serves the demo API with net/http.
//
// Usage:
//
//	std [gzip]
package main

import (
	"github.com/jinwei/api_demo/internal/service"
	"github.com/jinwei/api_demo/internal/stdserver"
)

func main() {
	service.Main("std", stdserver.Serve)
}
