package deal

import "time"

// DefaultStore is the label used when a deal carries no store name.
const DefaultStore = "Shop"

// Deal represents one advertised product offer as persisted in deals.json.
//
// Timestamps stay strings on the struct: a value that fails to parse is
// treated the same as a missing one, and well-formed values must round-trip
// byte for byte until a normalization pass rewrites them.
type Deal struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Store        string   `json:"store,omitempty"`
	PriceInfo    string   `json:"price_info,omitempty"`
	DisplayPrice string   `json:"display_price,omitempty"`
	Coupon       string   `json:"coupon,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	AffiliateURL string   `json:"affiliate_url,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Slug         string   `json:"slug"`
	PublishAt    string   `json:"publish_at,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	ExpiresAt    string   `json:"expires_at,omitempty"`

	// Derived fields, recomputed on every normalization pass. They are
	// persisted for the convenience of downstream consumers but are never
	// authoritative input.
	Price      *float64 `json:"price,omitempty"`
	PercentOff *int     `json:"percent_off,omitempty"`
}

// Key returns the natural identity of a deal within the persisted
// collection: the slug (marketplace item code) scoped by store.
func (d Deal) Key() string {
	return d.Slug + "||" + d.Store
}

// StoreLabel returns the store name, or a generic label when absent.
func (d Deal) StoreLabel() string {
	if d.Store == "" {
		return DefaultStore
	}
	return d.Store
}

// parseTime parses an RFC 3339 timestamp. Empty and malformed values
// both report false so callers can fall through to the defaulting rules.
func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// publishTime returns the parsed publish_at, falling back to created_at.
func (d Deal) publishTime() (time.Time, bool) {
	if t, ok := parseTime(d.PublishAt); ok {
		return t, true
	}
	return parseTime(d.CreatedAt)
}
