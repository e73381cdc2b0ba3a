package util

// GenerateLut samples curve at length evenly spaced points over [0, 1].
func GenerateLut(length int, curve func(float64) float64) []float64 {
	if length < 2 {
		length = 2
	}
	increment := 1.0 / float64(length-1)
	lut := make([]float64, length)
	for i := 0; i < length; i++ {
		lut[i] = curve(float64(i) * increment)
	}
	return lut
}

// SampleLut returns the entry of lut nearest to t, with t clamped to [0, 1].
func SampleLut(lut []float64, t float64) float64 {
	if len(lut) == 0 {
		return t
	}
	if t <= 0 {
		return lut[0]
	}
	if t >= 1 {
		return lut[len(lut)-1]
	}
	return lut[int(t*float64(len(lut)-1)+0.5)]
}
