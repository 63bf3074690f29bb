package match

import (
	types "github.com/unisync/unisync-backend/internal/domain"
)

const (
	majorPoints         = 30
	sharedInterestPoint = 10
	skillExchangePoints = 40
	maxScore            = 100
)

// Compatibility scores b from a's perspective on a 0-100 scale:
// +30 for the same major (exact match as stored), +10 per distinct shared
// interest token, +40 flat when a can teach at least one thing b wants to
// learn. The sum is clamped at 100. Pure; empty fields contribute 0.
func Compatibility(a, b types.User) int {
	score := 0
	if a.Major == b.Major {
		score += majorPoints
	}

	shared := intersectCount(a.InterestTokens(), b.InterestTokens())
	score += shared * sharedInterestPoint

	if overlaps(a.TeachableSkills(), b.LearningGoals()) {
		score += skillExchangePoints
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// intersectCount counts distinct tokens present in both lists,
// case-insensitively. Duplicates on either side count once.
func intersectCount(a, b []string) int {
	bSet := types.TokenSet(b)
	seen := map[string]bool{}
	n := 0
	for t := range types.TokenSet(a) {
		if bSet[t] && !seen[t] {
			seen[t] = true
			n++
		}
	}
	return n
}

func overlaps(a, b []string) bool {
	bSet := types.TokenSet(b)
	for t := range types.TokenSet(a) {
		if bSet[t] {
			return true
		}
	}
	return false
}
