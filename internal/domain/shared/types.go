package shared

// Role identifies what a user may do on the marketplace
type Role string

const (
	RoleBidder Role = "bidder"
	RoleSeller Role = "seller"
)

// Category classifies a listing. CategoryAll is a filter value only and
// never appears on an item.
type Category string

const (
	CategoryAll          Category = "All"
	CategoryArt          Category = "Art"
	CategoryElectronics  Category = "Electronics"
	CategoryFashion      Category = "Fashion"
	CategoryCollectibles Category = "Collectibles"
	CategoryOthers       Category = "Others"
)

// ListingCategories enumerates the categories a new listing may use.
var ListingCategories = []Category{
	CategoryArt,
	CategoryElectronics,
	CategoryFashion,
	CategoryCollectibles,
	CategoryOthers,
}

// Valid reports whether c is an assignable listing category.
func (c Category) Valid() bool {
	for _, known := range ListingCategories {
		if c == known {
			return true
		}
	}
	return false
}

// NotificationType discriminates feed entries
type NotificationType string

const (
	NotificationBid NotificationType = "bid"
	NotificationEnd NotificationType = "end"
)
