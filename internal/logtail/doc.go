// Package logtail reads the end of the application log and turns its JSON
// records into readable lines for the activity view.
//
// Read keeps a ring buffer of the last N lines so large rotated logs are
// scanned once without being held in memory. Parse understands the fields
// written by the zap JSON encoder (time, level, caller, msg) and collects
// everything else into Fields. Format renders an Entry as
//
//	15:04:05 INFO navigate path=/tooltip-details
package logtail
