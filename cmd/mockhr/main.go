package main

import (
	"flag"
	"log"
	"os"

	"staffdesk.com/staffdesk/mockhr"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	secret := os.Getenv("STAFFDESK_SECRET")
	if secret == "" {
		secret = "staffdesk-dev-secret"
	}

	server := mockhr.New([]byte(secret))
	server.SeedSample()

	log.Printf("mockhr listening on %s (login: amara@staffdesk.local / admin123)", *addr)
	if err := server.Router().Run(*addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
