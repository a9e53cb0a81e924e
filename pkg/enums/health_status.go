package enums

import "fmt"

// HealthStatus describes the current condition of a plant record. It is
// overwritten by the latest diagnosis severity when a health check is saved.
type HealthStatus string

const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusWarning  HealthStatus = "warning"
	HealthStatusCritical HealthStatus = "critical"
)

var validHealthStatuses = []HealthStatus{
	HealthStatusHealthy,
	HealthStatusWarning,
	HealthStatusCritical,
}

// String returns the literal string for the status.
func (h HealthStatus) String() string {
	return string(h)
}

// IsValid reports whether the status is known.
func (h HealthStatus) IsValid() bool {
	for _, candidate := range validHealthStatuses {
		if candidate == h {
			return true
		}
	}
	return false
}

// ParseHealthStatus converts raw input into a HealthStatus.
func ParseHealthStatus(value string) (HealthStatus, error) {
	for _, candidate := range validHealthStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid health status %q", value)
}
