package main

import (
	"log"

	"github.com/nutrobots/nutrobot-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error running nutrobot: %v", err)
	}
}
