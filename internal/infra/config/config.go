// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration for the whole service.
type Config struct {
	Port     string
	GCPCreds string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Firebase web API key for the Identity Toolkit sign-in flow.
	// When empty, FirebaseWebAPIKeySecret names the Secret Manager
	// secret to load it from.
	FirebaseWebAPIKey       string
	FirebaseWebAPIKeySecret string

	// Override for tests / emulators; empty means the public endpoint.
	IdentityBaseURL string

	// SendGrid (critical defect alerts). Same env-or-secret rule.
	SendGridAPIKey       string
	SendGridAPIKeySecret string
	SendGridFrom         string
	DefectAlertTo        string

	// Bucket holding the telas "imagen" objects.
	FabricImageBucket string
}

// Load reads the environment and returns the Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "texia-production-4f21a")

	return &Config{
		Port:     getenvDefault("PORT", "8080"),
		GCPCreds: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		FirebaseWebAPIKey:       os.Getenv("FIREBASE_WEB_API_KEY"),
		FirebaseWebAPIKeySecret: getenvDefault("FIREBASE_WEB_API_KEY_SECRET", "texia-firebase-web-api-key"),
		IdentityBaseURL:         os.Getenv("IDENTITY_BASE_URL"),

		SendGridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		SendGridAPIKeySecret: getenvDefault("SENDGRID_API_KEY_SECRET", "texia-sendgrid-api-key"),
		SendGridFrom:         os.Getenv("SENDGRID_FROM"),
		DefectAlertTo:        os.Getenv("DEFECT_ALERT_TO"),

		FabricImageBucket: os.Getenv("FABRIC_IMAGE_BUCKET"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
