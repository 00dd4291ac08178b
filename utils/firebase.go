// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	"barbershop/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseClients bundles the Firebase services the shop relies on.
// Either client is nil when the corresponding feature is not configured.
type FirebaseClients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// FirebaseInit initializes the Firebase App and the Auth and Firestore clients.
// It returns empty clients, not an error, when no project is configured; the
// caller then runs in advisory mode.
func FirebaseInit(ctx context.Context) (*FirebaseClients, error) {
	clients := &FirebaseClients{}
	if !config.AppConfig.IdentityConfigured() {
		return clients, nil
	}

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	clients.Auth, err = app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}

	if !config.AppConfig.UsesMongo() {
		clients.Firestore, err = app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
		}
	}
	return clients, nil
}

// Close releases the Firestore connection if one was opened.
func (f *FirebaseClients) Close() error {
	if f == nil || f.Firestore == nil {
		return nil
	}
	return f.Firestore.Close()
}
