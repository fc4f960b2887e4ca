// Package config derives the startup configuration from process arguments.
package config

// DefaultAddr is the address every frontend listens on.
const DefaultAddr = "127.0.0.1:55555"

// CompressionArg is the positional argument that turns on response
// compression.
const CompressionArg = "gzip"

// Config is computed once at startup and read-only afterwards.
type Config struct {
	Addr        string
	Compression bool
}

// FromArgs builds a Config from the arguments following the program name.
// Only the first argument is consulted; unrecognized values leave
// compression disabled.
func FromArgs(args []string) Config {
	c := Config{Addr: DefaultAddr}
	if len(args) > 0 {
		c.Compression = args[0] == CompressionArg
	}
	return c
}

// Mode names the response encoding mode for logs.
func (c Config) Mode() string {
	if c.Compression {
		return "gzip"
	}
	return "identity"
}
