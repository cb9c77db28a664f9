package main

import (
	"os"

	"github.com/laboratoriolopez/labsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
