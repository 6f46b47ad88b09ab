package scraper

import "strings"

// categoryKeywords maps sub-categories to title keywords used to refine
// the node-level category assignment
var categoryKeywords = map[string][]string{
	"gaming":       {"gaming", "console", "ps5", "xbox", "gpu", "cpu", "monitor", "keyboard", "mouse", "headset", "chair"},
	"home-theater": {"tv", "soundbar", "speaker", "projector", "receiver", "4k", "bluetooth"},
	"gadgets":      {"wireless", "portable", "charger", "cable", "phone", "tablet", "watch", "camera"},
	"computers":    {"laptop", "desktop", "monitor", "keyboard", "mouse", "ssd", "ram", "processor", "motherboard", "nas"},
}

// categoryOrder keeps classification deterministic; map iteration is not
var categoryOrder = []string{"gaming", "home-theater", "gadgets", "computers"}

// tagStopWords are filler words excluded from generated tags
var tagStopWords = map[string]bool{
	"with":   true,
	"from":   true,
	"best":   true,
	"amazon": true,
	"pro":    true,
	"max":    true,
	"plus":   true,
}

// classifyCategory refines the node's default category using keywords
// found in the product title
func classifyCategory(title, defaultCategory string) string {
	lower := strings.ToLower(title)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	if defaultCategory == "" {
		return "gadgets"
	}
	return defaultCategory
}

// generateTags derives searchable tags from a product title: lowercase
// words longer than three characters, stop words removed, first eight
// unique words kept
func generateTags(title string) []string {
	if title == "" {
		return nil
	}

	seen := make(map[string]bool)
	var tags []string
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if len(word) <= 3 || tagStopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		tags = append(tags, word)
		if len(tags) == 8 {
			break
		}
	}
	return tags
}
