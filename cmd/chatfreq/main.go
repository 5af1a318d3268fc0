// cmd/chatfreq/main.go
package main

import (
	cmd "github.com/mwiater/chatfreq/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the chatfreq CLI application by delegating to the cobra root
// command defined in the cli package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
