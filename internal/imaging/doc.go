// Package imaging converts image files to and from base64 payloads.
// Prediction endpoints receive images as base64 strings inside JSON bodies;
// this package bridges between those payloads and files on disk.
package imaging
