package keys

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/go-drift/uienv/pkg/env"
)

// SizeCategory is the user's preferred content size. Categories are ordered
// from smallest to largest.
type SizeCategory int

const (
	ExtraSmall SizeCategory = iota
	Small
	Medium
	Large
	ExtraLarge
	ExtraExtraLarge
	ExtraExtraExtraLarge
	AccessibilityMedium
	AccessibilityLarge
	AccessibilityExtraLarge
	AccessibilityExtraExtraLarge
	AccessibilityExtraExtraExtraLarge
)

var sizeCategoryNames = [...]string{
	ExtraSmall:                        "extra-small",
	Small:                             "small",
	Medium:                            "medium",
	Large:                             "large",
	ExtraLarge:                        "extra-large",
	ExtraExtraLarge:                   "extra-extra-large",
	ExtraExtraExtraLarge:              "extra-extra-extra-large",
	AccessibilityMedium:               "accessibility-medium",
	AccessibilityLarge:                "accessibility-large",
	AccessibilityExtraLarge:           "accessibility-extra-large",
	AccessibilityExtraExtraLarge:      "accessibility-extra-extra-large",
	AccessibilityExtraExtraExtraLarge: "accessibility-extra-extra-extra-large",
}

var sizeCategoryAliases = map[string]SizeCategory{
	"xs": ExtraSmall, "s": Small, "m": Medium, "l": Large,
	"xl": ExtraLarge, "xxl": ExtraExtraLarge, "xxxl": ExtraExtraExtraLarge,
	"ax1": AccessibilityMedium, "ax2": AccessibilityLarge, "ax3": AccessibilityExtraLarge,
	"ax4": AccessibilityExtraExtraLarge, "ax5": AccessibilityExtraExtraExtraLarge,
}

// bodyPoints is the body text size at each category. Large is the reference.
var bodyPoints = [...]int{14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53}

const referencePoints = 17

func (c SizeCategory) String() string {
	if c < 0 || int(c) >= len(sizeCategoryNames) {
		return fmt.Sprintf("SizeCategory(%d)", int(c))
	}
	return sizeCategoryNames[c]
}

// IsAccessibility reports whether c is one of the accessibility sizes.
func (c SizeCategory) IsAccessibility() bool {
	return c >= AccessibilityMedium
}

// ScaledFontSize scales a font size chosen for Large to category c.
func (c SizeCategory) ScaledFontSize(base fixed.Int26_6) fixed.Int26_6 {
	if c < 0 || int(c) >= len(bodyPoints) {
		return base
	}
	return base.Mul(fixed.I(bodyPoints[c])) / referencePoints
}

// ParseSizeCategory parses a category name such as "extra-large" or a short
// form such as "xl" or "ax2".
func ParseSizeCategory(s string) (SizeCategory, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := sizeCategoryAliases[name]; ok {
		return c, nil
	}
	for i, n := range sizeCategoryNames {
		if n == name {
			return SizeCategory(i), nil
		}
	}
	return 0, fmt.Errorf("parse size category %q: unknown category", s)
}

// SizeCategoryKey is the key for the preferred content size.
type SizeCategoryKey struct{}

// DefaultValue returns Large.
func (SizeCategoryKey) DefaultValue() SizeCategory {
	return Large
}

// SizeCategoryOf returns the size category in effect at n.
func SizeCategoryOf(n env.Node) SizeCategory {
	return env.Get(n, SizeCategoryKey{})
}
