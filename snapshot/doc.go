// Package snapshot serializes whole alignments to a self-describing
// binary format and stores them through a blobstore.BlobStore.
//
// A snapshot records the codec and compression it was written with in
// its header, so any reader with the built-in codecs can load it without
// out-of-band knowledge.
package snapshot
