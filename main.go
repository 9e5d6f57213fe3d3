package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/secmon-lab/curbside/pkg/cli"
)

var version = "dev"

func main() {
	// A missing .env file is fine; flags and the environment still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		os.Stderr.WriteString("failed to load .env: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		os.Exit(1)
	}
}
