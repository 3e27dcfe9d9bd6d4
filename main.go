// Package main is the entry point for vlctrack.
package main

import (
	"github.com/samber/lo"
	"github.com/vlctrack/vlctrack/cmd"
	"github.com/vlctrack/vlctrack/config"
	"github.com/vlctrack/vlctrack/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
