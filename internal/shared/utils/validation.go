package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Size limits (in bytes)
const (
	MaxScratchpadSize = 64 * 1024 // 64KB - persisted notes text
	MaxFrameSize      = 16 * 1024 // 16KB - single WebSocket frame
)

// String length limits
const (
	MaxIDLength      = 128
	MaxQueryLength   = 256
	MaxCommandLength = 512
	MaxAssetCount    = 64
)

// MaxDelta bounds a single drag/resize step; larger values are client bugs
const MaxDelta = 100000

// SafeIDPattern allows alphanumeric, hyphens, underscores
var SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates an ID field
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateQuery validates a spotlight query. Empty is allowed.
func ValidateQuery(query string) error {
	return ValidateString(query, "query", 0, MaxQueryLength, false)
}

// ValidateCommand validates a terminal command line
func ValidateCommand(command string) error {
	return ValidateString(command, "command", 1, MaxCommandLength, true)
}

// ValidateScratchpad validates notes text before it is persisted
func ValidateScratchpad(text string) error {
	if len(text) > MaxScratchpadSize {
		return fmt.Errorf("scratchpad size %d bytes exceeds maximum %d bytes", len(text), MaxScratchpadSize)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("scratchpad must be valid UTF-8")
	}
	return nil
}

// ValidateDelta validates a pointer delta
func ValidateDelta(dx, dy float64) error {
	for _, v := range []float64{dx, dy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("delta must be a finite number")
		}
		if math.Abs(v) > MaxDelta {
			return fmt.Errorf("delta must not exceed %d units", MaxDelta)
		}
	}
	return nil
}

// ValidateViewport validates a reported container size
func ValidateViewport(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) || width <= 0 || height <= 0 {
		return fmt.Errorf("viewport must have positive width and height")
	}
	if width > MaxDelta || height > MaxDelta {
		return fmt.Errorf("viewport must not exceed %d units", MaxDelta)
	}
	return nil
}
