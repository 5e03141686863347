// Command genkey hashes an admin registration key for the ADMIN_KEY_HASH
// config entry. Run it once when rotating the key:
//
//	go run ./cmd/genkey "the-new-admin-key"
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: genkey <admin-key>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 12)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ADMIN_KEY_HASH=%s\n", hash)
}
