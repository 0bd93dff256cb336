package bootstrap

import (
	"log"
	"os"

	"github.com/clerk/clerk-sdk-go/v2"
)

// InitClerk installs the Clerk API key for JWT verification.
func InitClerk() {
	secret := os.Getenv("CLERK_SECRET_KEY")
	if secret == "" {
		log.Fatal("[Clerk] CLERK_SECRET_KEY not set")
	}
	clerk.SetKey(secret)

	log.Println("[Clerk] initialized")
}
