package ecs

import "testing"

func TestFixedStepAdvance(t *testing.T) {
	tests := []struct {
		name   string
		step   float64
		max    int
		deltas []float64
		want   []int
	}{
		{"exact", 0.02, 5, []float64{0.02, 0.02}, []int{1, 1}},
		{"sixty_hz_frames", 0.02, 5, []float64{1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60}, []int{0, 1, 1, 1, 1, 1}},
		{"clamped", 0.02, 3, []float64{1.0, 0.01}, []int{3, 0}},
		{"zero_delta", 0.02, 5, []float64{0}, []int{0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFixedStep(tc.step, tc.max)
			for i, dt := range tc.deltas {
				if got := f.Advance(dt); got != tc.want[i] {
					t.Fatalf("frame %d: Advance(%v) = %d, want %d", i, dt, got, tc.want[i])
				}
			}
		})
	}
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		recordSystem{name: "a", out: &order},
		nil,
		recordSystem{name: "b", out: &order},
	)
	s.Add(recordSystem{name: "c", out: &order})
	s.Update(NewWorld())

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

type recordSystem struct {
	name string
	out  *[]string
}

func (r recordSystem) Update(*World) {
	*r.out = append(*r.out, r.name)
}
