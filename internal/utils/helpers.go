// Package utils holds small cross-cutting helpers shared by the handlers
// and the render package — leveled logging over the standard library's log
// package, and first-non-empty coalescing for style cascades.
package utils

import "log"

// LogDebug logs debug information; it always logs, there is no debug switch
func LogDebug(format string, args ...interface{}) {
	log.Printf("[DEBUG] "+format, args...)
}

// LogInfo logs informational messages
func LogInfo(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// LogError logs error messages
func LogError(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// LogWarn logs warning messages
func LogWarn(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}

// Coalesce returns the first non-empty string
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// CoalesceF returns the first non-zero float64
func CoalesceF(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
