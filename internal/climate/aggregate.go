package climate

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// rainDayThresholdMm is the precipitation a day must exceed to count as a rain day.
const rainDayThresholdMm = 1.0

// MatchDay collects, for every year in years, the first record falling on the given
// day and month. Years where that calendar date does not exist are skipped.
func MatchDay(series Series, day, month int, years YearRange) ([]DailyRecord, error) {
	var matched []DailyRecord

	for year := years.Start; year <= years.End; year++ {
		if !validDate(year, month, day) {
			continue
		}
		if rec, ok := series.Lookup(year, month, day); ok {
			matched = append(matched, rec)
		}
	}

	if len(matched) == 0 {
		return nil, ErrNoData
	}
	return matched, nil
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

// Summarize computes the aggregate statistics over a non-empty matched day set.
// The heat index is computed per record before averaging.
func Summarize(days []DailyRecord) Stats {
	col := func(p Parameter) []float64 {
		out := make([]float64, len(days))
		for i, d := range days {
			out[i] = d.Value(p)
		}
		return out
	}
	mean := func(p Parameter) float64 {
		return stat.Mean(col(p), nil)
	}

	heat := make([]float64, len(days))
	rainDays := 0
	for i, d := range days {
		heat[i] = HeatIndex(d.Value(ParamTemp), d.Value(ParamRelHumidity))
		if d.Value(ParamPrecipitation) > rainDayThresholdMm {
			rainDays++
		}
	}

	return Stats{
		TempMaxMean:        mean(ParamTempMax),
		TempMinMean:        mean(ParamTempMin),
		TempMean:           mean(ParamTemp),
		Wind10mMean:        mean(ParamWind10m),
		Wind50mMean:        mean(ParamWind50m),
		GustMax:            floats.Max(col(ParamGust10mMax)),
		RainDays:           rainDays,
		TotalDays:          len(days),
		HeatIndexMean:      stat.Mean(heat, nil),
		RelHumidityMean:    mean(ParamRelHumidity),
		SpecHumidityMean:   mean(ParamSpecHumidity),
		DewPointMean:       mean(ParamDewPoint),
		SurfacePressMean:   mean(ParamSurfacePress),
		SoilTempMean:       mean(ParamSoilTemp),
		SolarAllSkyMean:    mean(ParamSolarAllSky),
		SolarClearSkyMean:  mean(ParamSolarClearSky),
		ClearnessIndexMean: mean(ParamClearness),
	}
}
