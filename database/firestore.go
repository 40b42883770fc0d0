package database

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Connect decodes the base64-encoded service-account key, initializes
// the Firebase app and returns a Firestore client for its project.
// The process must not come up without a working credential, so every
// failure here is fatal to the caller.
func Connect(ctx context.Context, encodedKey string) (*firestore.Client, error) {
	if encodedKey == "" {
		return nil, fmt.Errorf("SERVICE_ACCOUNT_KEY_BASE64 is not set")
	}

	raw, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decode service account key: %w", err)
	}

	var account struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	if account.ProjectID == "" {
		return nil, fmt.Errorf("service account key has no project_id")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: account.ProjectID}, option.WithCredentialsJSON(raw))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
