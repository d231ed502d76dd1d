package certificates

import "time"

// Lifecycle classifies a certificate's expiration state relative to a point in time.
type Lifecycle string

const (
	LifecycleCurrent      Lifecycle = "current"
	LifecycleExpiringSoon Lifecycle = "expiring_soon"
	LifecycleExpired      Lifecycle = "expired"
)

// ExpiringSoonWindow is the lookahead within which a certificate counts as expiring soon.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Classify returns the lifecycle state of a certificate as of now.
// Certificates without an expiration date never expire.
func Classify(cert Certificate, now time.Time) Lifecycle {
	if cert.ExpirationDate == nil {
		return LifecycleCurrent
	}
	exp := *cert.ExpirationDate
	if exp.Before(now) {
		return LifecycleExpired
	}
	if !exp.After(now.Add(ExpiringSoonWindow)) {
		return LifecycleExpiringSoon
	}
	return LifecycleCurrent
}

// IsActive reports whether the certificate counts toward compliance as of now:
// status active and not expired.
func IsActive(cert Certificate, now time.Time) bool {
	if cert.Status != StatusActive {
		return false
	}
	return Classify(cert, now) != LifecycleExpired
}
