package main

import (
	"log"

	"github.com/tablescope/tablescope-backend/cmd"
)

func main() {
	if err := cmd.RunServer(); err != nil {
		log.Fatal(err)
	}
}
