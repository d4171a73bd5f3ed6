package outbound

import "context"

// MediaStorePort uploads one media asset under a deterministic object name
// and returns its public URL.
type MediaStorePort interface {
	Upload(ctx context.Context, objectName string, payload []byte, contentType string) (string, error)
}
