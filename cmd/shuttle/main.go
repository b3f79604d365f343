package main

import (
	"os"

	"github.com/schmitthub/shuttle/internal/shuttle"
)

func main() {
	os.Exit(shuttle.Main())
}
