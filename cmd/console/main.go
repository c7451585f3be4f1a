package main

import (
	"github.com/cmlabs-hris/hris-console-go/internal/cli"
)

func main() {
	cli.Execute()
}
