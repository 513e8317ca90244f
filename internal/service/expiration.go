package service

import "time"

// computeExpiration derives the absolute expiration instant of a stamp from
// its remaining TTL.
//
// ok reports whether the upstream record carried a numeric batchTTL at all.
// When the TTL is absent or negative the result is nil: a stamp with an
// unknown or already-expired TTL is still a valid, returnable record, just
// without a computed expiration.
//
// The result is now + ttl seconds at whole-second precision in UTC. now is
// supplied by the caller rather than read globally, so the calculation is
// independently testable with a fixed instant.
func computeExpiration(ttl int64, ok bool, now time.Time) *time.Time {
	if !ok || ttl < 0 {
		return nil
	}

	expiresAt := now.UTC().Truncate(time.Second).Add(time.Duration(ttl) * time.Second)
	return &expiresAt
}
