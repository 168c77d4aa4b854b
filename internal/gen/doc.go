// Package gen renders finite.Enum descriptor implementations for analyzed
// enums. Output is produced from a text/template, run through go/format,
// and written next to the enum's own sources.
package gen
