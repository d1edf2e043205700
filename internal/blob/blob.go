// Package blob stores uploaded images and hands back a URL clients can
// render. The S3 implementation is used when a bucket is configured; the
// local implementation backs development runs and doubles as the graceful
// fallback when an S3 put fails.
package blob

import "context"

type Store interface {
	// Put writes data under path and returns the public URL for it.
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
