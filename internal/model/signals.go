package model

import (
	"strconv"
	"strings"
)

// DefaultClipEstimate is used when a footage description carries no usable
// clip count.
const DefaultClipEstimate = 10

type StrategyOverride string

const (
	OverrideNone      StrategyOverride = ""
	OverridePromoBits StrategyOverride = "promo-bits"
)

// ContentSignals is the tagged view of the free-text profile fields. It is
// computed once at the boundary so the scheduling core never touches raw
// strings.
type ContentSignals struct {
	HasFootage      bool
	RawClipEstimate int
	Override        StrategyOverride
}

func DeriveSignals(p Profile) ContentSignals {
	signals := ContentSignals{}
	if strings.TrimSpace(p.RawFootageDescription) != "" {
		signals.HasFootage = true
		signals.RawClipEstimate = firstIntToken(p.RawFootageDescription, DefaultClipEstimate)
	}
	note := strings.ToLower(p.StrategyNote)
	if strings.Contains(note, "promote") && strings.Contains(note, "bit") {
		signals.Override = OverridePromoBits
	}
	return signals
}

// firstIntToken extracts the first run of digits from s, falling back when
// none is found or the value is implausible.
func firstIntToken(s string, fallback int) int {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseClipCount(s[start:i], fallback)
		}
	}
	if start >= 0 {
		return parseClipCount(s[start:], fallback)
	}
	return fallback
}

func parseClipCount(digits string, fallback int) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
