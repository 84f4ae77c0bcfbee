package vitals

// HealthState reports how far the surrounding node lifecycle has
// progressed. The lifecycle owner sets it; this package only defines
// the value and its serialized form.
type HealthState string

const (
	// HealthHealthy means initial setup completed.
	HealthHealthy HealthState = "healthy"
	// HealthReady means bootstrapping completed.
	HealthReady HealthState = "ready"
)

// IsValid reports whether h is one of the declared states.
func (h HealthState) IsValid() bool {
	switch h {
	case HealthHealthy, HealthReady:
		return true
	}

	return false
}

func (h HealthState) String() string {
	return string(h)
}
