// negoprep is the command-line interface for the negotiation preparation
// tool. It talks to a running API server with --server or operates directly
// on the local snapshot file.
package main

import "github.com/zaoqi-icu/negoprep/internal/interfaces/cli"

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
