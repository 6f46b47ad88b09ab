package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"forgefinds/dealworker/helpers"
	"forgefinds/dealworker/internal/deal"
	"forgefinds/dealworker/logger"
	apperrors "forgefinds/dealworker/pkg/errors"
	"forgefinds/dealworker/services/cache"
)

var asinRe = regexp.MustCompile(`/dp/([A-Z0-9]+)`)

// AmazonScraper scrapes product deals from one Amazon best-seller
// category node page
type AmazonScraper struct {
	config    Config
	cacheSvc  cache.CacheService
	blockTime time.Duration
	fetchFunc func() (io.Reader, error)
	log       *logger.Logger
}

// NewAmazonScraper creates a new scraper for a category node
func NewAmazonScraper(config Config, cacheSvc cache.CacheService) *AmazonScraper {
	s := &AmazonScraper{
		config:    config,
		cacheSvc:  cacheSvc,
		blockTime: time.Duration(config.BlockTime) * time.Second,
	}
	s.log = logger.ForScraper(s.GetName())
	s.fetchFunc = s.fetchWithCache
	return s
}

// GetName returns the scraper's name for logging
func (s *AmazonScraper) GetName() string {
	return "Amazon:" + s.config.NodeID
}

// fetchWithCache fetches the node page with rate limiting backed by the
// cache service
func (s *AmazonScraper) fetchWithCache() (io.Reader, error) {
	// Check if the scraper is rate limited
	if s.cacheSvc != nil && s.config.CacheKey != "" {
		if _, err := s.cacheSvc.Get(s.config.CacheKey); err == nil {
			return nil, apperrors.NewRateLimit(s.GetName(), s.blockTime)
		}
	}

	body, err := helpers.FetchWithRandomHeaders(s.config.URL)
	if err != nil {
		if s.cacheSvc != nil && s.config.CacheKey != "" && strings.HasPrefix(err.Error(), "rate limited") {
			// Set rate limiting cache
			s.cacheSvc.Set(s.config.CacheKey, []byte(fmt.Sprintf("%d", int(s.blockTime/time.Second))), s.blockTime)
		}
		return nil, err
	}

	return body, nil
}

// FetchDeals fetches and parses the node page into raw deal records
func (s *AmazonScraper) FetchDeals() ([]deal.Deal, error) {
	body, err := s.fetchFunc()
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, apperrors.NewParsing(s.GetName(), "failed to parse node page", err)
	}

	now := time.Now().UTC()
	var deals []deal.Deal

	// Amazon serves several card layouts; use the first selector that
	// matches anything
	matched := false
	for _, listSelector := range s.config.Selectors.ProductList {
		items := doc.Find(listSelector)
		if items.Length() == 0 {
			continue
		}
		matched = true

		items.EachWithBreak(func(i int, el *goquery.Selection) bool {
			if s.config.MaxItems > 0 && len(deals) >= s.config.MaxItems {
				return false
			}
			if d := s.processItem(el, now); d != nil {
				deals = append(deals, *d)
			}
			return true
		})
		break
	}
	if !matched {
		s.log.Warn().Msg("No product list selector matched the node page")
	}

	return deals, nil
}

// processItem extracts one raw deal record from a product card.
// Entries without a title or ASIN are skipped.
func (s *AmazonScraper) processItem(el *goquery.Selection, now time.Time) *deal.Deal {
	title := strings.TrimSpace(el.Find(s.config.Selectors.Title).First().Text())
	if title == "" {
		return nil
	}

	linkSel := el.Find(s.config.Selectors.Link).First()
	asin := extractASIN(linkSel)
	if asin == "" {
		s.log.Debug().Str("title", title).Msg("Skipping card without a product link")
		return nil
	}

	price := strings.TrimSpace(el.Find(s.config.Selectors.Price).First().Text())
	if price == "" {
		price = "Check price"
	}

	imageURL, _ := el.Find(s.config.Selectors.Image).First().Attr("src")
	timestamp := now.Format(time.RFC3339)

	return &deal.Deal{
		Title:        title,
		Description:  fmt.Sprintf("Amazon best seller in %s. Check current price and reviews on Amazon.", s.config.Category),
		PriceInfo:    price,
		DisplayPrice: price,
		ImageURL:     imageURL,
		AffiliateURL: fmt.Sprintf("https://amazon.com/dp/%s?tag=%s", asin, s.config.AffiliateTag),
		Store:        "Amazon",
		Category:     classifyCategory(title, s.config.Category),
		Tags:         generateTags(title),
		Slug:         asin,
		PublishAt:    timestamp,
		CreatedAt:    timestamp,
		// A fresh expiry on every scrape: merged records keep their
		// original publish date, so deriving expiry from that would
		// back-date deals that are still on the shelf
		ExpiresAt: now.Add(deal.DefaultTTL).Format(time.RFC3339),
	}
}

// extractASIN pulls the marketplace item code from a product link,
// preferring the data-asin attribute over the href path
func extractASIN(linkSel *goquery.Selection) string {
	if asin, exists := linkSel.Attr("data-asin"); exists && asin != "" {
		return asin
	}
	href, exists := linkSel.Attr("href")
	if !exists {
		return ""
	}
	m := asinRe.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}
