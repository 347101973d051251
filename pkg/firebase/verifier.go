package firebase

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Identity is what the verifier extracts from a Firebase ID token.
type Identity struct {
	UID   string
	Email string
	Admin bool
}

// TokenVerifier validates Firebase ID tokens through the Admin SDK. The
// admin role comes from the token's custom claims, not from comparing
// email addresses.
type TokenVerifier struct {
	authClient *auth.Client
}

// NewTokenVerifier initializes the Firebase app from the service-account
// credentials file and returns a verifier bound to its auth client.
func NewTokenVerifier(credentialsFile string) (*TokenVerifier, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	log.Println("[FIREBASE] Token verifier initialized")
	return &TokenVerifier{authClient: authClient}, nil
}

// Verify checks the ID token signature and expiry and extracts the identity.
func (v *TokenVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid ID token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	admin, _ := token.Claims["admin"].(bool)

	return &Identity{
		UID:   token.UID,
		Email: email,
		Admin: admin,
	}, nil
}
