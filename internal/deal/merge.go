package deal

import "time"

// Merge reconciles a freshly scraped batch against the persisted
// collection. Expired and over-age records are pruned from existing
// first; scraped records then update (or insert at) their natural key,
// preserving the original publish_at and created_at of pre-existing
// keys. The result is sorted newest first by publish_at and truncated
// to maxCount. Neither input slice is mutated.
//
// Merge does not refresh derived numeric fields; callers apply
// NormalizeTimestamps and DeriveNumbers to the result.
//
// Scraped batches are expected to be unique by key; should two records
// in the same batch collide, the later one wins.
func Merge(existing, scraped []Deal, now time.Time, maxAgeDays, maxCount int) []Deal {
	merged := make([]Deal, 0, len(existing)+len(scraped))
	for _, d := range existing {
		if retained(d, now, maxAgeDays) {
			merged = append(merged, d)
		}
	}

	index := make(map[string]int, len(merged))
	for i, d := range merged {
		index[d.Key()] = i
	}

	for _, s := range scraped {
		i, ok := index[s.Key()]
		if !ok {
			merged = append(merged, s)
			index[s.Key()] = len(merged) - 1
			continue
		}
		// A re-scrape must not reset the original publish date.
		s.PublishAt = merged[i].PublishAt
		s.CreatedAt = merged[i].CreatedAt
		merged[i] = s
	}

	sortByPublishDesc(merged)
	if maxCount > 0 && len(merged) > maxCount {
		merged = merged[:maxCount]
	}
	return merged
}

// retained reports whether a persisted deal survives the retention pass.
// The maxAgeDays window measured from publish_at (falling back to
// created_at) is the authoritative cutoff; an elapsed expires_at
// (falling back to created_at when absent) evicts as well. Records with
// no parseable timestamp at all are kept and left for the size cap.
func retained(d Deal, now time.Time, maxAgeDays int) bool {
	exp, ok := parseTime(d.ExpiresAt)
	if !ok {
		exp, ok = parseTime(d.CreatedAt)
	}
	if ok && !exp.After(now) {
		return false
	}

	if maxAgeDays > 0 {
		if pub, ok := d.publishTime(); ok {
			if now.Sub(pub) > time.Duration(maxAgeDays)*24*time.Hour {
				return false
			}
		}
	}

	return true
}
