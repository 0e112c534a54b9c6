package storage

// Backend is a bucketed key-value store. Values are opaque bytes; callers
// pick the encoding (see PutJSON and GetJSON).
type Backend interface {
	CreateBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	Put(bucket, key, value []byte) error
	// Get returns nil without error when the key is absent.
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// ForEach visits every pair in the bucket in ascending key order.
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	Close() error
}
