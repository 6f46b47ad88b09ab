package deal

import (
	"sort"
	"time"
)

// IsLive reports whether d's window covers ref: publish_at is inclusive,
// expires_at exclusive at the boundary instant. Deals with missing or
// malformed window timestamps are never live; run NormalizeTimestamps
// first.
func IsLive(d Deal, ref time.Time) bool {
	pub, okPub := parseTime(d.PublishAt)
	exp, okExp := parseTime(d.ExpiresAt)
	if !okPub || !okExp {
		return false
	}
	return !pub.After(ref) && exp.After(ref)
}

// IsScheduled reports whether d's publish_at is in the future relative
// to ref.
func IsScheduled(d Deal, ref time.Time) bool {
	pub, ok := parseTime(d.PublishAt)
	return ok && pub.After(ref)
}

// SelectLive returns the deals whose window covers ref, most recently
// published first. With includeScheduled set, the window check is
// bypassed entirely (administrative and preview contexts). The input
// slice is never mutated.
func SelectLive(deals []Deal, ref time.Time, includeScheduled bool) []Deal {
	out := make([]Deal, 0, len(deals))
	for _, d := range deals {
		if includeScheduled || IsLive(d, ref) {
			out = append(out, d)
		}
	}
	sortByPublishDesc(out)
	return out
}

// sortByPublishDesc orders deals newest first by publish_at. The sort is
// stable so equal timestamps keep their input order. Unparseable
// timestamps sort last.
func sortByPublishDesc(deals []Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		ti, _ := deals[i].publishTime()
		tj, _ := deals[j].publishTime()
		return ti.After(tj)
	})
}
