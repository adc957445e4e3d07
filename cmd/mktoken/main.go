package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"staffdesk.com/staffdesk/security"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

func main() {
	email := flag.String("email", "amara@staffdesk.local", "subject email")
	role := flag.String("role", common.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("STAFFDESK_SECRET")
	if secret == "" {
		secret = "staffdesk-dev-secret"
	}

	token, err := security.CreateSessionToken(*email, *role, []byte(secret), *ttl)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
