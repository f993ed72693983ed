package main

import (
	"os"

	"bigcrypt/cmd/bigcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
