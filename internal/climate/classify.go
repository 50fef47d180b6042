package climate

// Extreme-condition labels.
const (
	LabelHotHumid      = "🥵 Muy caluroso y húmedo"
	LabelVeryCold      = "❄️ Muy frío"
	LabelStrongWind    = "💨 Viento fuerte"
	LabelRainLikely    = "🌧️ Alta probabilidad de lluvia"
	LabelHeatIndexHigh = "🔥 Sensación térmica incómoda"
	LabelSolarVeryHigh = "☀️ Radiación solar muy alta"
)

// Prediction labels.
const (
	PredictRainyCloudy = "🌧️ Alta probabilidad de lluvia, día húmedo y nublado."
	PredictSunny       = "☀️ Día mayormente soleado, buen momento para actividades al aire libre."
	PredictMuggy       = "🥵 Clima caluroso y húmedo, sensación de bochorno incómoda."
	PredictColdDamp    = "❄️ Día frío y húmedo, posible sensación de incomodidad."
	PredictWindy       = "💨 Día ventoso, precaución en exteriores."
	PredictSunscreen   = "🌞 Radiación solar alta, usa protector solar."
)

// rule emits label when match holds. An elseOf rule is only evaluated when the
// rule directly before it did not fire.
type rule struct {
	label  string
	match  func(Stats) bool
	elseOf bool
}

var extremeRules = []rule{
	{label: LabelHotHumid, match: func(s Stats) bool {
		return s.TempMaxMean > 32 && s.RelHumidityMean > 60
	}},
	{label: LabelVeryCold, elseOf: true, match: func(s Stats) bool {
		return s.TempMinMean < 5
	}},
	{label: LabelStrongWind, match: func(s Stats) bool {
		return s.GustMax > 15
	}},
	{label: LabelRainLikely, match: func(s Stats) bool {
		return float64(s.RainDays) > 0.3*float64(s.TotalDays) && s.ClearnessIndexMean < 0.4
	}},
	{label: LabelHeatIndexHigh, match: func(s Stats) bool {
		return s.HeatIndexMean > 32
	}},
	{label: LabelSolarVeryHigh, match: func(s Stats) bool {
		return s.SolarAllSkyMean > 800
	}},
}

var predictionRules = []rule{
	{label: PredictRainyCloudy, match: func(s Stats) bool {
		return s.RainRatio() > 0.4 && s.RelHumidityMean > 70 && s.ClearnessIndexMean < 0.5
	}},
	{label: PredictSunny, match: func(s Stats) bool {
		return s.ClearnessIndexMean > 0.6 && s.RadiationRatio() > 0.7 && s.RainRatio() < 0.2
	}},
	{label: PredictMuggy, match: func(s Stats) bool {
		return s.TempMean > 25 && s.RelHumidityMean > 65 && s.HeatIndexMean > s.TempMean+3
	}},
	{label: PredictColdDamp, match: func(s Stats) bool {
		return s.TempMean < 15 && s.RelHumidityMean > 70 && s.DewPointMean > 5
	}},
	{label: PredictWindy, match: func(s Stats) bool {
		return s.Wind10mMean > 4 && s.GustMax > 8 && s.ClearnessIndexMean > 0.5
	}},
	{label: PredictSunscreen, match: func(s Stats) bool {
		return s.SolarAllSkyMean > 6 && s.SolarClearSkyMean > 6.5 && s.ClearnessIndexMean > 0.5
	}},
}

// Classify evaluates the extreme-condition and prediction rules in their fixed order.
// Both slices are non-nil.
func Classify(s Stats) (extremes, predictions []string) {
	return applyRules(extremeRules, s), applyRules(predictionRules, s)
}

func applyRules(rules []rule, s Stats) []string {
	out := make([]string, 0, len(rules))
	prevFired := false
	for _, r := range rules {
		if r.elseOf && prevFired {
			prevFired = false
			continue
		}
		prevFired = r.match(s)
		if prevFired {
			out = append(out, r.label)
		}
	}
	return out
}
