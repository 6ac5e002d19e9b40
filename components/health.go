package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Fraction is the remaining health in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
