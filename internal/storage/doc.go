// Package storage persists pipeline artifacts on the local filesystem.
// It covers the two artifact families the pipeline produces: JSON documents
// (metric reports, run summaries) and opaque binary blobs (model weights,
// serialized arrays). Writes go through a temporary file and an atomic
// rename, so a crashed run never leaves a half-written artifact behind.
package storage
