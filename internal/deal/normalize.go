package deal

import "time"

// DefaultTTL is how long a deal stays live when the source supplies no
// explicit expiry.
const DefaultTTL = 60 * 24 * time.Hour

// NormalizeTimestamps resolves the publish and expiry window on a copy
// of d. publish_at falls back to created_at, then to ref; expires_at
// falls back to publish_at plus DefaultTTL. Timestamps that fail to
// parse count as absent and trigger the default.
func NormalizeTimestamps(d Deal, ref time.Time) Deal {
	pub, ok := parseTime(d.PublishAt)
	if !ok {
		if created, createdOK := parseTime(d.CreatedAt); createdOK {
			pub = created
			d.PublishAt = d.CreatedAt
		} else {
			pub = ref
			d.PublishAt = ref.Format(time.RFC3339)
		}
	}

	if _, ok := parseTime(d.ExpiresAt); !ok {
		d.ExpiresAt = pub.Add(DefaultTTL).Format(time.RFC3339)
	}

	return d
}
