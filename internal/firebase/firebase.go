package firebase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/example/portfolio-api/internal/config"
)

// Clients bundles the Firebase-backed clients the application depends on.
// It is constructed once at startup and injected into repositories and
// services; nothing holds a package-level instance.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *gcs.BucketHandle
}

// New initializes the Firebase Admin SDK from cfg and returns the client
// bundle. Credentials come from a service account file path or a base64
// encoded JSON key.
func New(ctx context.Context, cfg *config.Config) (*Clients, error) {
	var opt option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		opt = option.WithCredentialsFile(cfg.GoogleApplicationCredentials)
	} else if cfg.FirebaseServiceAccountJSONBase64 != "" {
		jsonKey, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is not a valid base64 string")
		}
		opt = option.WithCredentialsJSON(jsonKey)
	} else {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 must be set")
	}

	conf := &firebase.Config{
		ProjectID:     cfg.FirebaseProjectID,
		StorageBucket: cfg.StorageBucket,
	}

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	fbAuth, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	st, err := app.Storage(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("app.Storage: %w", err)
	}
	bucket, err := st.DefaultBucket()
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("storage.DefaultBucket: %w", err)
	}

	return &Clients{Firestore: fs, Auth: fbAuth, Bucket: bucket}, nil
}

// Close releases the underlying connections. Only the Firestore client holds
// one that needs explicit teardown.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
