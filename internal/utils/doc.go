// Package utils provides a collection of helper functions for common
// filesystem tasks, such as directory creation, file size reporting,
// and existence checks. It is designed to simplify repetitive operations
// and ensure consistency across the application.
package utils
