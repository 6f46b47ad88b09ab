package scraper

import "forgefinds/dealworker/internal/deal"

// Scraper defines the contract for all scraper implementations
type Scraper interface {
	// FetchDeals retrieves raw deal records from a source page
	FetchDeals() ([]deal.Deal, error)

	// GetName returns the scraper's name for logging and identification
	GetName() string
}

// Selectors contains CSS selectors for product cards on a listing page.
// ProductList entries are tried in order because Amazon markup varies
// between responses.
type Selectors struct {
	ProductList []string
	Title       string
	Link        string
	Price       string
	Image       string
}

// Config contains configuration for one Amazon category-node scraper
type Config struct {
	NodeID       string
	URL          string
	Category     string
	AffiliateTag string
	CacheKey     string
	BlockTime    int
	MaxItems     int
	Selectors    Selectors
}
