package money

import (
	"fmt"
	"strconv"
	"strings"

	"InventoryManagement/internal/errs"
)

// IdentifierWidth is the canonical width of a UPC.
const IdentifierWidth = 12

// MaxIdentifier is the largest value that fits in IdentifierWidth digits.
const MaxIdentifier int64 = 999_999_999_999

// FormatIdentifier renders n zero-padded to 12 digits, without grouping or sign.
// Callers are expected to pass ValidIdentifier values; negative n is clamped to 0
// and values above MaxIdentifier to MaxIdentifier.
func FormatIdentifier(n int64) string {
	switch {
	case n < 0:
		n = 0
	case n > MaxIdentifier:
		n = MaxIdentifier
	}
	return fmt.Sprintf("%0*d", IdentifierWidth, n)
}

// ParseIdentifier parses digits of any width (leading zeros allowed) into a
// UPC value. Signs, separators and values wider than 12 digits are rejected.
func ParseIdentifier(text string) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, errs.Validation("identifier is required")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errs.Validation("identifier %q must contain digits only", text)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n > MaxIdentifier {
		return 0, errs.Validation("identifier %q does not fit in %d digits", text, IdentifierWidth)
	}
	return n, nil
}

// ValidIdentifier reports whether n can be written as a canonical UPC.
func ValidIdentifier(n int64) bool {
	return n >= 0 && n <= MaxIdentifier
}
