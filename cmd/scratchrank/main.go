package main

import (
	"github.com/joho/godotenv"
	"github.com/pfrederiksen/scratchrank/internal/cli"
)

func main() {
	// Local runs can keep SCRATCHRANK_* settings in a .env file; the
	// scheduled runner sets real environment variables instead.
	_ = godotenv.Load()

	cli.Execute()
}
