// internal/infra/secrets/loader.go
package secrets

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	smpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// LoadString reads the latest version of a Secret Manager secret as a
// trimmed string. Used for the Firebase web API key and the SendGrid
// key when their env vars are not set.
//
// projectID: e.g. texia-production-4f21a
// secretID : e.g. "texia-firebase-web-api-key"
func LoadString(ctx context.Context, projectID, secretID string) (string, error) {
	if strings.TrimSpace(projectID) == "" || strings.TrimSpace(secretID) == "" {
		return "", fmt.Errorf("secrets.LoadString: projectID and secretID are required")
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("secretmanager.NewClient: %w", err)
	}
	defer client.Close()

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretID)

	res, err := client.AccessSecretVersion(ctx, &smpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("access secret version %s: %w", name, err)
	}

	return strings.TrimSpace(string(res.Payload.Data)), nil
}
