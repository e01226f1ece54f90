package main

import (
	"os"

	"submit-lsf-job/cmd/app"
)

func main() {
	rootCmd := app.NewSubmitCommand()
	os.Exit(app.Execute(rootCmd, os.Args[1:]))
}
