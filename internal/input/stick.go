// Package input maps raw analog stick state onto cursor steps. Button input
// reaches the browser through key bindings; the stick is the only continuous
// device and is polled once per tick.
package input

// Stick axis range of the standard pad. Deflections inside the deadzone are
// treated as centered.
const (
	Deadzone      = 8000
	MaxDeflection = 32767

	maxStep = 10
)

// Deflection is one polled sample of the left stick. Y follows the device
// convention: positive is up.
type Deflection struct {
	Y int
}

// Poller supplies stick samples. Hosts without an analog device use Nop.
type Poller interface {
	Poll() Deflection
}

// Nop is the poller for keyboard-only hosts; it always reports center.
type Nop struct{}

func (Nop) Poll() Deflection { return Deflection{} }

// Step converts a deflection into a signed cursor delta. Inside the deadzone
// the step is 0. Outside it the magnitude interpolates linearly from 1 (just
// past the deadzone) to 10 (full deflection). Stick up moves the cursor up,
// so the sign is inverted.
func Step(d Deflection) int {
	mag := d.Y
	if mag < 0 {
		mag = -mag
	}
	if mag <= Deadzone {
		return 0
	}
	if mag > MaxDeflection {
		mag = MaxDeflection
	}

	pct := float64(mag-Deadzone) / float64(MaxDeflection-Deadzone)
	step := 1 + int(pct*(maxStep-1))

	if d.Y > 0 {
		return -step
	}
	return step
}
