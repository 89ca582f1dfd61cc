// Package patch applies partially filled requests over current values.
package patch

// Coalesce returns *ptr, or fallback when the field was not sent.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
