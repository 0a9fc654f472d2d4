package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := execute(context.Background()); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}
