package store

import "context"

// KV is the string-keyed blob storage the dataset container lives in. Get
// reports a missing key with found=false and a nil error; errors are reserved
// for backend failures.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
