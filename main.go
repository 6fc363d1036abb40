package main

import (
	"github.com/10gen/realm-backend/cmd"
)

func main() {
	cmd.Run()
}
