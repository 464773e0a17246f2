package v1alpha1

// Value converts the optional request geometry into the immutable value
// object used by the calculation services. Callers must have validated
// the input first; nil fields count as zero.
func (g *GeometryInput) Value() Geometry {
	return Geometry{
		L1:    deref(g.L1),
		L2:    deref(g.L2),
		H:     deref(g.H),
		Beta1: deref(g.Beta1),
		Beta2: deref(g.Beta2),
		IPc:   deref(g.IPc),
	}
}

func (p *GeotechnicalParamsInput) Value() GeotechnicalParams {
	return GeotechnicalParams{
		GammaSat:    deref(p.GammaSat),
		GammaW:      deref(p.GammaW),
		Fi:          deref(p.Fi),
		C:           deref(p.C),
		Mu:          deref(p.Mu),
		FiInterface: deref(p.FiInterface),
	}
}

func (p *CalibrationParamsInput) Value() CalibrationParams {
	return CalibrationParams{
		Hs:   deref(p.Hs),
		Kt:   deref(p.Kt),
		An:   deref(p.An),
		Ho:   deref(p.Ho),
		Hmin: deref(p.Hmin),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func StringToSeriesType(s string) (SeriesType, bool) {
	switch s {
	case string(SeriesTypeRainfall):
		return SeriesTypeRainfall, true
	case string(SeriesTypeWaterTable):
		return SeriesTypeWaterTable, true
	case string(SeriesTypeDisplacement):
		return SeriesTypeDisplacement, true
	default:
		return SeriesType(s), false
	}
}
