package main

import (
	"github.com/pvetools/pvemetrics/pkg/cli"
)

func main() {
	cli.Execute()
}
