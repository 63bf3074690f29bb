package match

import (
	"testing"

	types "github.com/unisync/unisync-backend/internal/domain"
)

func TestCompatibility(t *testing.T) {
	t.Parallel()

	alice := types.User{
		ID: 1, Name: "Alice", Major: "CS",
		Interests: "AI,Music",
		CanTeach:  "Python",
	}
	bob := types.User{
		ID: 2, Name: "Bob", Major: "CS",
		Interests:    "Music,Sports",
		WantsToLearn: "Python,Guitar",
	}

	cases := []struct {
		name string
		a, b types.User
		want int
	}{
		{
			name: "major_plus_one_interest_plus_skill_exchange",
			a:    alice,
			b:    bob,
			want: 80,
		},
		{
			name: "no_overlap_at_all",
			a:    types.User{Major: "CS", Interests: "AI"},
			b:    types.User{Major: "Biology", Interests: "Hiking"},
			want: 0,
		},
		{
			name: "empty_fields_contribute_zero",
			a:    types.User{Major: "CS"},
			b:    types.User{Major: "CS"},
			want: 30,
		},
		{
			name: "duplicate_interest_tokens_count_once",
			a:    types.User{Interests: "Music, Music, Music"},
			b:    types.User{Interests: "Music"},
			want: 10,
		},
		{
			name: "interest_match_is_case_insensitive",
			a:    types.User{Interests: "music"},
			b:    types.User{Interests: "Music"},
			want: 10,
		},
		{
			name: "major_match_is_case_sensitive",
			a:    types.User{Major: "cs"},
			b:    types.User{Major: "CS"},
			want: 0,
		},
		{
			name: "teach_learn_overlap_is_flat_forty",
			a:    types.User{CanTeach: "Python, Guitar"},
			b:    types.User{WantsToLearn: "Python, Guitar"},
			want: 40,
		},
		{
			name: "can_teach_sentinel_means_nothing_to_teach",
			a:    types.User{CanTeach: types.CanTeachNone},
			b:    types.User{WantsToLearn: "None yet"},
			want: 0,
		},
		{
			name: "clamped_at_one_hundred",
			a: types.User{
				Major:     "CS",
				Interests: "AI,Music,Sports,Film,Cooking",
				CanTeach:  "Python",
			},
			b: types.User{
				Major:        "CS",
				Interests:    "AI,Music,Sports,Film,Cooking",
				WantsToLearn: "Python",
			},
			// raw sum 30 + 50 + 40 = 120
			want: 100,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Compatibility(tc.a, tc.b)
			if got != tc.want {
				t.Fatalf("Compatibility()=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestCompatibilityIsPure(t *testing.T) {
	t.Parallel()
	a := types.User{Major: "CS", Interests: "AI,Music", CanTeach: "Python"}
	b := types.User{Major: "CS", Interests: "Music", WantsToLearn: "Python"}
	first := Compatibility(a, b)
	for i := 0; i < 5; i++ {
		if got := Compatibility(a, b); got != first {
			t.Fatalf("score changed between calls: got=%d want=%d", got, first)
		}
	}
}
