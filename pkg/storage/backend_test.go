package storage

import (
	"bytes"
	"errors"
	"testing"
)

// backendTestSuite runs the shared contract against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	bucket := []byte("runs")

	t.Run("CreateBucketIdempotent", func(t *testing.T) {
		backend := newBackend(t)

		for i := 0; i < 2; i++ {
			if err := backend.CreateBucket(bucket); err != nil {
				t.Fatalf("CreateBucket #%d failed: %v", i+1, err)
			}
		}

		exists, err := backend.BucketExists(bucket)
		if err != nil {
			t.Fatalf("BucketExists failed: %v", err)
		}
		if !exists {
			t.Error("Bucket should exist after creation")
		}

		exists, _ = backend.BucketExists([]byte("other"))
		if exists {
			t.Error("Unrelated bucket should not exist")
		}
	})

	t.Run("PutGetDelete", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(bucket)

		value := []byte(`{"seed":0}`)
		if err := backend.Put(bucket, []byte("a"), value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		// Mutating the caller's slice must not leak into the store.
		value[0] = 'X'

		got, err := backend.Get(bucket, []byte("a"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, []byte(`{"seed":0}`)) {
			t.Errorf("Get returned %s", got)
		}

		if err := backend.Delete(bucket, []byte("a")); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		got, err = backend.Get(bucket, []byte("a"))
		if err != nil {
			t.Fatalf("Get after delete failed: %v", err)
		}
		if got != nil {
			t.Errorf("Key should be gone, got %s", got)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := newBackend(t)

		if err := backend.Put(bucket, []byte("a"), []byte("b")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put: expected ErrBucketNotFound, got %v", err)
		}
		if _, err := backend.Get(bucket, []byte("a")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get: expected ErrBucketNotFound, got %v", err)
		}
		if err := backend.ForEach(bucket, func(k, v []byte) error { return nil }); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("ForEach: expected ErrBucketNotFound, got %v", err)
		}
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(bucket)

		for _, k := range []string{"c", "a", "b"} {
			backend.Put(bucket, []byte(k), []byte("v"+k))
		}

		var keys []string
		err := backend.ForEach(bucket, func(k, v []byte) error {
			if string(v) != "v"+string(k) {
				t.Errorf("Key %s has value %s", k, v)
			}
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}

		want := []string{"a", "b", "c"}
		if len(keys) != len(want) {
			t.Fatalf("ForEach visited %v, want %v", keys, want)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("ForEach visited %v, want %v", keys, want)
				break
			}
		}
	})

	t.Run("ForEachStopsOnError", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(bucket)
		backend.Put(bucket, []byte("a"), []byte("1"))
		backend.Put(bucket, []byte("b"), []byte("2"))

		stop := errors.New("stop")
		visited := 0
		err := backend.ForEach(bucket, func(k, v []byte) error {
			visited++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("Expected callback error, got %v", err)
		}
		if visited != 1 {
			t.Errorf("Visited %d pairs, want 1", visited)
		}
	})

	t.Run("JSONHelpers", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(bucket)

		type doc struct {
			Name string `json:"name"`
			Seed uint64 `json:"seed"`
		}

		if err := PutJSON(backend, bucket, "k", doc{Name: "walls", Seed: 9}); err != nil {
			t.Fatalf("PutJSON failed: %v", err)
		}

		var got doc
		found, err := GetJSON(backend, bucket, "k", &got)
		if err != nil {
			t.Fatalf("GetJSON failed: %v", err)
		}
		if !found || got.Name != "walls" || got.Seed != 9 {
			t.Errorf("GetJSON = %+v (found=%v)", got, found)
		}

		found, err = GetJSON(backend, bucket, "missing", &got)
		if err != nil || found {
			t.Errorf("GetJSON on missing key: found=%v err=%v", found, err)
		}

		backend.Put(bucket, []byte("bad"), []byte("{"))
		if _, err := GetJSON(backend, bucket, "bad", &got); err == nil {
			t.Error("Expected decode error for malformed value")
		}
	})
}
