// Command tokengen mints a signed JWT for local development and testing.
// The secret must match the server's jwt.secret_key.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"threatmonitor-api/pkg/scope"
)

func main() {
	var (
		secret   = flag.String("secret", "", "JWT signing secret (required)")
		userID   = flag.String("user-id", "dev-user", "subject user ID")
		username = flag.String("username", "developer", "username claim")
		groups   = flag.String("groups", "", "comma-separated group claims, e.g. Admin or Analyst")
	)
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -secret is required")
		os.Exit(1)
	}

	payload := scope.Payload{
		UserID:   *userID,
		Username: *username,
	}
	if *groups != "" {
		payload.Groups = strings.Split(*groups, ",")
	}

	token, err := scope.New(*secret).CreateToken(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
