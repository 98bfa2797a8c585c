// internal/adapters/out/gcs/fabric_image_resolver.go
package gcs

import (
	"strings"

	gcscommon "texia/internal/adapters/out/gcs/common"
)

// Default bucket for fabric photos (public).
// Fallback when env FABRIC_IMAGE_BUCKET is empty.
const defaultFabricImageBucket = "texia-production_fabric_images"

// FabricImageURLResolver resolves the "imagen" field of a telas
// document into a browsable URL for catalog responses.
//
// The stored value can be:
// - http(s)://... (returned as-is)
// - https://storage.googleapis.com/... (parsed, bucket taken from URL)
// - objectPath (treated as an object within the configured bucket)
type FabricImageURLResolver struct {
	Bucket string
}

func NewFabricImageURLResolver(bucket string) *FabricImageURLResolver {
	return &FabricImageURLResolver{Bucket: strings.TrimSpace(bucket)}
}

func (r *FabricImageURLResolver) ResolveForResponse(storedObjectPath string) string {
	p := strings.TrimSpace(storedObjectPath)
	if p == "" {
		return ""
	}

	// already absolute URL
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		if b, obj, ok := gcscommon.ParseGCSURL(p); ok {
			return gcscommon.GCSPublicURL(b, obj, defaultFabricImageBucket)
		}
		return p
	}

	// otherwise treat as objectPath within configured bucket
	b := ""
	if r != nil {
		b = strings.TrimSpace(r.Bucket)
	}
	if b == "" {
		b = defaultFabricImageBucket
	}
	return gcscommon.GCSPublicURL(b, p, defaultFabricImageBucket)
}
