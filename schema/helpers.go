package schema

import (
	"fmt"
	"strings"
)

// FormatFollowers formats a follower count as "1.2M", "45.0K" or "900".
// Counts at or above a thousand keep one decimal place.
func FormatFollowers(count int) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d", count)
	}
}

// FormatCost formats a whole-dollar cost as "$1,250".
func FormatCost(cost int) string {
	s := fmt.Sprintf("%d", cost)
	var b strings.Builder
	b.WriteByte('$')
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// NormalizeList lowercases and trims each entry, dropping empties.
// Used for platforms and any case-insensitive any-of filter lists.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		cleaned := strings.ToLower(strings.TrimSpace(item))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// ContainsFold reports whether list has an entry equal to s ignoring case.
func ContainsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// TierForFollowers maps a total follower count to its size class.
func TierForFollowers(followers int) Tier {
	switch {
	case followers >= ThresholdMega:
		return TierMega
	case followers >= ThresholdMacro:
		return TierMacro
	case followers >= ThresholdMicro:
		return TierMicro
	default:
		return TierNano
	}
}

// CategoryForCost maps an estimated cost to its pricing class.
func CategoryForCost(cost int) TierCategory {
	switch {
	case cost >= ThresholdPremium:
		return CategoryPremium
	case cost >= ThresholdStandard:
		return CategoryStandard
	default:
		return CategoryBudget
	}
}

// BucketForTier maps a size class to its filter bucket value.
func BucketForTier(tier Tier) FollowerBucket {
	switch tier {
	case TierMega:
		return BucketMega
	case TierMacro:
		return BucketMacro
	case TierMicro:
		return BucketMicro
	default:
		return BucketNano
	}
}
