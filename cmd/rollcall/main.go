package main

import (
	"log"

	"github.com/quorumhq/rollcall/internal/rollcall/app"
)

func main() {
	rollcall, err := app.New(app.LoadConfig())
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	if err := rollcall.Run(); err != nil {
		log.Fatalf("rollcall exited: %v", err)
	}
}
