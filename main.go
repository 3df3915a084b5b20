package main

import (
	"github.com/joho/godotenv"

	"github.com/watzon/huegen/cli"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cli.Execute()
}
