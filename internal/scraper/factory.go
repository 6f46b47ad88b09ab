package scraper

import (
	"fmt"

	"forgefinds/dealworker/config"
	"forgefinds/dealworker/services/cache"
)

// nodeCategories maps known Amazon category nodes to site categories.
// Unknown nodes fall back to "gadgets".
var nodeCategories = map[string]string{
	"53629917011": "computers",
}

// defaultSelectors covers the card layouts Amazon serves for
// best-seller listings
var defaultSelectors = Selectors{
	ProductList: []string{
		`div[data-component-type="s-search-result"]`,
		"div.s-result-item",
		"div.a-cardui-card",
	},
	Title: "h2 a span",
	Link:  "h2 a",
	Price: ".a-price-whole",
	Image: "img",
}

// CreateScrapers creates one scraper per configured Amazon node
func CreateScrapers(cfg config.Config, cacheSvc cache.CacheService) []Scraper {
	scrapers := make([]Scraper, 0, len(cfg.AmazonNodes))
	for _, nodeID := range cfg.AmazonNodes {
		category, ok := nodeCategories[nodeID]
		if !ok {
			category = "gadgets"
		}

		scrapers = append(scrapers, NewAmazonScraper(Config{
			NodeID:       nodeID,
			URL:          fmt.Sprintf("https://www.amazon.com/b?node=%s", nodeID),
			Category:     category,
			AffiliateTag: cfg.AffiliateTag,
			CacheKey:     "amazon_" + nodeID + "_rate_limited",
			BlockTime:    300,
			MaxItems:     20,
			Selectors:    defaultSelectors,
		}, cacheSvc))
	}
	return scrapers
}
