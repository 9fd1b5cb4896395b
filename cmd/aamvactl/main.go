package main

import (
	"github.com/drennick/aamvactl/cmd/aamvactl/cmd"
	"github.com/drennick/aamvactl/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	cmd.Execute()
}
