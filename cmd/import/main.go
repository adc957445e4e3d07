package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"staffdesk.com/staffdesk/session"
	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

// Bulk-creates employees from a CSV with a header row:
// firstName,lastName,nic,gender,address,phone,email,password,birthday,departmentId,role

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "backend base URL")
	email := flag.String("email", "", "admin login email")
	password := flag.String("password", "", "admin login password")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: import [flags] <employees.csv>")
	}
	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	records, err := utils.ParseCSVRecords(file)
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}

	ctx := context.Background()
	sess := session.New()
	client := v1.NewClient(*baseURL, sess, 30*time.Second)

	login, err := client.Auth.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	sess.Set(login.Token, login.Role, login.Email)

	created, failed := 0, 0
	for i, record := range records {
		dto := &common.EmployeeCreate{
			FirstName:    record["firstName"],
			LastName:     record["lastName"],
			NIC:          record["nic"],
			Gender:       record["gender"],
			Address:      record["address"],
			Phone:        record["phone"],
			Email:        record["email"],
			Password:     record["password"],
			Birthday:     record["birthday"],
			DepartmentID: record["departmentId"],
			Role:         record["role"],
		}
		if _, err := client.Employees.Create(ctx, dto); err != nil {
			failed++
			log.Printf("row %d (%s): %v", i+2, dto.Email, err)
			continue
		}
		created++
	}

	fmt.Printf("Imported %d employees, %d failed.\n", created, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
