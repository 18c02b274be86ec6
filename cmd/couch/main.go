package main

import (
	"os"

	"github.com/adupuis1/CouchSuite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
