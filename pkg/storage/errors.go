package storage

import "errors"

var ErrBucketNotFound = errors.New("bucket not found")
