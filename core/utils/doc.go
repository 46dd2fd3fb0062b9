// Package utils provides small helpers shared across tablediff: converting
// scanned database values into cell text and normalising list flags.
package utils
