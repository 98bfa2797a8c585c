// internal/adapters/out/gcs/fabric_image_resolver_test.go
package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveForResponse(t *testing.T) {
	r := NewFabricImageURLResolver("texia-fabrics")

	cases := []struct {
		name   string
		stored string
		want   string
	}{
		{"empty", "", ""},
		{"object path", "telas/pima.jpg", "https://storage.googleapis.com/texia-fabrics/telas/pima.jpg"},
		{"leading slash", "/telas/pima.jpg", "https://storage.googleapis.com/texia-fabrics/telas/pima.jpg"},
		{"external url passes through", "https://cdn.example.com/pima.jpg", "https://cdn.example.com/pima.jpg"},
		{"gcs url keeps its own bucket", "https://storage.googleapis.com/other-bucket/x.jpg", "https://storage.googleapis.com/other-bucket/x.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ResolveForResponse(tc.stored))
		})
	}
}

func TestResolveForResponseEmptyBucketFallsBack(t *testing.T) {
	r := NewFabricImageURLResolver("")

	got := r.ResolveForResponse("telas/pima.jpg")
	assert.Equal(t, "https://storage.googleapis.com/"+defaultFabricImageBucket+"/telas/pima.jpg", got)
}
