// internal/adapters/out/gcs/fabric_image_repository_gcs.go
package gcs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iamcredentials/v1"

	gcscommon "texia/internal/adapters/out/gcs/common"
)

// FabricImageRepositoryGCS serves fabric photos out of a private
// bucket. Catalog rows normally use the public resolver; this issues
// a V4 signed GET URL when the bucket is not world-readable.
type FabricImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string

	// Service account used for SignBlob.
	// e.g. texia-backend-sa@xxxx.iam.gserviceaccount.com
	SignerEmail string

	// TTL of issued view URLs (15m when unset).
	SignedURLTTL time.Duration
}

const defaultSignedURLTTL = 15 * time.Minute

func NewFabricImageRepositoryGCS(client *storage.Client, bucket string) *FabricImageRepositoryGCS {
	b := strings.TrimSpace(bucket)
	if b == "" {
		b = defaultFabricImageBucket
	}

	signer := strings.TrimSpace(os.Getenv("GCS_SIGNER_EMAIL"))

	ttl := defaultSignedURLTTL
	if v := strings.TrimSpace(os.Getenv("FABRIC_IMAGE_SIGNED_URL_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	return &FabricImageRepositoryGCS{
		Client:       client,
		Bucket:       b,
		SignerEmail:  signer,
		SignedURLTTL: ttl,
	}
}

func (r *FabricImageRepositoryGCS) bucket() string {
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return defaultFabricImageBucket
	}
	return b
}

func (r *FabricImageRepositoryGCS) signedURLTTL() time.Duration {
	if r == nil || r.SignedURLTTL <= 0 {
		return defaultSignedURLTTL
	}
	return r.SignedURLTTL
}

// Exists checks the object behind a stored "imagen" value.
func (r *FabricImageRepositoryGCS) Exists(ctx context.Context, storedPath string) (bool, error) {
	if r == nil || r.Client == nil {
		return false, errors.New("FabricImageRepositoryGCS: nil storage client")
	}

	bucket, objectPath := r.split(storedPath)
	if objectPath == "" {
		return false, fmt.Errorf("Exists: empty object path")
	}

	_, err := r.Client.Bucket(bucket).Object(objectPath).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IssueSignedViewURL returns a V4 signed GET URL for the stored
// image. Signing goes through the IAM Credentials API, so no key file
// is needed on the service account.
func (r *FabricImageRepositoryGCS) IssueSignedViewURL(ctx context.Context, storedPath string) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("FabricImageRepositoryGCS: nil storage client")
	}

	signer := strings.TrimSpace(r.SignerEmail)
	if signer == "" {
		return "", fmt.Errorf("IssueSignedViewURL: signerEmail is empty (set GCS_SIGNER_EMAIL)")
	}

	bucket, objectPath := r.split(storedPath)
	if objectPath == "" {
		return "", fmt.Errorf("IssueSignedViewURL: empty object path")
	}

	signBytes := func(b []byte) ([]byte, error) {
		svc, err := iamcredentials.NewService(ctx)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("projects/-/serviceAccounts/%s", signer)
		req := &iamcredentials.SignBlobRequest{
			Payload: base64.StdEncoding.EncodeToString(b),
		}
		resp, err := svc.Projects.ServiceAccounts.SignBlob(name, req).Do()
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.DecodeString(resp.SignedBlob)
	}

	exp := time.Now().UTC().Add(r.signedURLTTL())
	return storage.SignedURL(bucket, objectPath, &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "GET",
		Expires:        exp,
		GoogleAccessID: signer,
		SignBytes:      signBytes,
	})
}

// split resolves a stored "imagen" value into (bucket, objectPath).
func (r *FabricImageRepositoryGCS) split(storedPath string) (string, string) {
	p := strings.TrimSpace(storedPath)
	if b, obj, ok := gcscommon.ParseGCSURL(p); ok {
		return b, obj
	}
	return r.bucket(), strings.TrimLeft(p, "/")
}
