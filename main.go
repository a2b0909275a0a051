package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tutorbay/tutorbay/cmd"
)

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
