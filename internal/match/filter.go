package match

import (
	"strings"

	types "github.com/unisync/unisync-backend/internal/domain"
)

// WildcardAll disables the major/year predicates.
const WildcardAll = "All"

// Filters are independent predicates over the user collection. Zero values
// (empty string, empty slice) make a predicate vacuously true.
type Filters struct {
	Major     string
	Year      string
	Skills    []string
	Interests []string
	Query     string
}

func (f Filters) Active() bool {
	return (f.Major != "" && f.Major != WildcardAll) ||
		(f.Year != "" && f.Year != WildcardAll) ||
		len(f.Skills) > 0 || len(f.Interests) > 0 ||
		strings.TrimSpace(f.Query) != ""
}

// FilterUsers returns the sub-sequence of users passing every active filter,
// in the original order. The requesting user is excluded unconditionally.
func FilterUsers(users []types.User, requesterID int, f Filters) []types.User {
	filtered := make([]types.User, 0, len(users))
	for _, u := range users {
		if u.ID == requesterID {
			continue
		}
		if f.Major != "" && f.Major != WildcardAll && u.Major != f.Major {
			continue
		}
		if f.Year != "" && f.Year != WildcardAll && u.Year != f.Year {
			continue
		}
		if len(f.Skills) > 0 && !sharesAnyToken(u.SkillTokens(), f.Skills) {
			continue
		}
		if len(f.Interests) > 0 && !sharesAnyToken(u.InterestTokens(), f.Interests) {
			continue
		}
		if q := strings.TrimSpace(f.Query); q != "" && !matchesQuery(u, q) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

// sharesAnyToken implements the any-of semantics: one shared token per field
// is enough. Tokens compare exactly (the filter values come from the same
// vocabulary as the stored fields).
func sharesAnyToken(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func matchesQuery(u types.User, query string) bool {
	haystack := strings.ToLower(u.Name + " " + u.Major + " " + u.Skills + " " + u.Interests)
	return strings.Contains(haystack, strings.ToLower(query))
}
