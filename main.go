package main

import (
	"os"

	"github.com/lensfolio/lensfolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
