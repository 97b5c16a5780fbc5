// Package configbox provides an attribute-style view over decoded YAML and
// JSON documents. A Box wraps a generic mapping and exposes dot-separated
// path lookups with typed accessors, so pipeline code can read nested
// configuration values without hand-written struct types.
package configbox
