// cmd/gentoken/main.go — Mints an admin bearer token for local testing.
// Usage: go run ./cmd/gentoken -user <uuid> [-secret s] [-hours n]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func main() {
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "HMAC signing secret")
	user := flag.String("user", uuid.NewString(), "user id claim")
	hours := flag.Int("hours", 8, "token lifetime in hours")
	flag.Parse()

	if *secret == "" {
		log.Fatal("missing -secret (or JWT_SECRET env var)")
	}

	claims := middleware.JWTClaims{
		UserID: *user,
		Roles:  []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*hours) * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
