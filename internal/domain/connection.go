package domain

import "time"

// Connection is an append-only log row: a pair may appear any number of times
// with different type tags (peer_match, dorm_interest_<listing_id>, ...).
type Connection struct {
	User1ID        int       `json:"user1_id"`
	User2ID        int       `json:"user2_id"`
	ConnectionType string    `json:"connection_type"`
	Timestamp      time.Time `json:"timestamp"`
}

func (c Connection) Involves(userID int) bool {
	return c.User1ID == userID || c.User2ID == userID
}
