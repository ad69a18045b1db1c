package main

import (
	"os"

	"github.com/setstore/setstore/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
