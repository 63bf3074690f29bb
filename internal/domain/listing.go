package domain

type ListingType string

const (
	ListingRoom        ListingType = "room"
	ListingFurniture   ListingType = "furniture"
	ListingTextbook    ListingType = "textbook"
	ListingElectronics ListingType = "electronics"
	ListingOther       ListingType = "other"
)

// ListingStatusActive is the only status new listings get; rows with other
// values may still appear in the CSV and are preserved as-is.
const ListingStatusActive = "active"

func ValidListingType(t string) bool {
	switch ListingType(t) {
	case ListingRoom, ListingFurniture, ListingTextbook, ListingElectronics, ListingOther:
		return true
	default:
		return false
	}
}

type Listing struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	// Price is free text: "$50", "Free", "100-150", currency symbols included.
	Price  string `json:"price"`
	Status string `json:"status"`
}
