package domain

// Sentinel values carried over from the original CSV data: they mean "field
// unset" but live in the same free-text columns as real entries.
const (
	CanTeachNone      = "None yet"
	WantsToLearnUnset = "Open to learning"
)

type User struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Year              string `json:"year"`
	Major             string `json:"major"`
	Skills            string `json:"skills"`
	Interests         string `json:"interests"`
	XFactor           string `json:"x_factor"`
	CanTeach          string `json:"can_teach"`
	WantsToLearn      string `json:"wants_to_learn"`
	AccommodationNeed string `json:"accommodation_need"`
}

// TeachableSkills returns the can_teach tokens, empty when the sentinel is set.
func (u User) TeachableSkills() []string {
	if u.CanTeach == CanTeachNone {
		return nil
	}
	return SplitTokens(u.CanTeach)
}

// LearningGoals returns the wants_to_learn tokens, empty when the sentinel is set.
func (u User) LearningGoals() []string {
	if u.WantsToLearn == WantsToLearnUnset {
		return nil
	}
	return SplitTokens(u.WantsToLearn)
}

func (u User) SkillTokens() []string    { return SplitTokens(u.Skills) }
func (u User) InterestTokens() []string { return SplitTokens(u.Interests) }
