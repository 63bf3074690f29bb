package domain

import "time"

// Rating holds one review of rated by rater. At most one row exists per
// (rater, rated) pair; re-rating overwrites in place.
type Rating struct {
	RaterID   int       `json:"rater_id"`
	RatedID   int       `json:"rated_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Timestamp time.Time `json:"timestamp"`
}

type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
