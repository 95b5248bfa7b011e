package main

import (
	"os"

	"github.com/marogo-civils/marogo-web/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
