// Package main is the entry point for makedot.
package main

import (
	"github.com/makedot/makedot/cmd"
	"github.com/makedot/makedot/config"
	"github.com/makedot/makedot/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
