package input

import "testing"

func TestStep(t *testing.T) {
	tests := []struct {
		name string
		y    int
		want int
	}{
		{"centered", 0, 0},
		{"inside deadzone up", 7999, 0},
		{"inside deadzone down", -7999, 0},
		{"at deadzone edge", 8000, 0},
		{"just past deadzone up", 8001, -1},
		{"just past deadzone down", -8001, 1},
		{"full deflection up", 32767, -10},
		{"full deflection down", -32767, 10},
		{"beyond range clamps", 40000, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Step(Deflection{Y: tt.y}); got != tt.want {
				t.Errorf("Step(%d) = %d, want %d", tt.y, got, tt.want)
			}
		})
	}
}

// TestStep_MonotonicMagnitude checks the step magnitude never decreases as
// deflection grows, and stays within 1..10 outside the deadzone.
func TestStep_MonotonicMagnitude(t *testing.T) {
	prev := 0
	for y := Deadzone + 1; y <= MaxDeflection; y += 500 {
		step := Step(Deflection{Y: -y})
		if step < 1 || step > 10 {
			t.Fatalf("step %d out of range at deflection %d", step, y)
		}
		if step < prev {
			t.Fatalf("step decreased from %d to %d at deflection %d", prev, step, y)
		}
		prev = step
	}
}

func TestNopPoller(t *testing.T) {
	if d := (Nop{}).Poll(); Step(d) != 0 {
		t.Error("Nop poller must never produce a step")
	}
}
