// Package blobstore provides storage for immutable alignment snapshots.
//
// BlobStore is the interface for reading and writing whole blobs.
// Snapshots are written once and never patched, so the surface is
// deliberately whole-value: Put, Get, Delete, List. Implementations must
// be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, atomic writes via temp file + rename
//   - MemoryStore: in-memory, for tests
//   - CachingStore: read-through cache over any inner store
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3
package blobstore
