// Package app provides the application logic behind each pipekit command.
// It wires the configuration, artifact store, YAML loader, and image codec
// together and keeps the cmd package free of business logic.
package app
