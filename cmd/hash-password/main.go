package main

import (
	"fmt"
	"log"
	"os"

	"facultyreview/internal/middleware/auth"
)

// Generates the bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hash-password <password>
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
