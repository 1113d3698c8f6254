package geometry

// DeltaT is the usable temperature drop between the reservoir and the
// cutoff temperature. It is not clamped; Input.Validate rejects negatives.
func DeltaT(reservoirC, cutoffC float64) float64 {
	return reservoirC - cutoffC
}
