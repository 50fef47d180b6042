package climate

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

// record builds a complete DailyRecord with every parameter set to base,
// then applies overrides.
func record(date time.Time, base float64, overrides map[Parameter]float64) DailyRecord {
	values := make(map[Parameter]float64, len(Parameters))
	for _, p := range Parameters {
		values[p] = base
	}
	for p, v := range overrides {
		values[p] = v
	}
	return DailyRecord{Date: date, Values: values}
}

func TestMatchDayAcrossYears(t *testing.T) {
	series := Series{
		record(day(2010, 10, 4), 1, nil),
		record(day(2010, 10, 5), 2, nil),
		record(day(2011, 10, 5), 3, nil),
		record(day(2011, 10, 5), 99, nil), // duplicate date, first wins
		record(day(2012, 10, 6), 4, nil),
		record(day(2013, 10, 5), 5, nil),
	}

	matched, err := MatchDay(series, 5, 10, YearRange{Start: 1984, End: 2023})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []float64
	for _, r := range matched {
		got = append(got, r.Value(ParamTemp))
	}
	if want := []float64{2, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("matched temps = %v, want %v", got, want)
	}
}

func TestMatchDayRespectsYearRange(t *testing.T) {
	series := Series{
		record(day(2005, 3, 1), 1, nil),
		record(day(2024, 3, 1), 2, nil),
	}

	if _, err := MatchDay(series, 1, 3, YearRange{Start: 2010, End: 2023}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestMatchDayLeapDay(t *testing.T) {
	series := Series{
		record(day(2019, 3, 1), 1, nil),
		record(day(2020, 2, 29), 2, nil),
		record(day(2021, 3, 1), 3, nil),
	}

	matched, err := MatchDay(series, 29, 2, YearRange{Start: 2019, End: 2021})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 1 || matched[0].Value(ParamTemp) != 2 {
		t.Fatalf("expected only the 2020 leap day, got %+v", matched)
	}
}

func TestMatchDayImpossibleDate(t *testing.T) {
	series := Series{record(day(2020, 5, 1), 1, nil)}
	if _, err := MatchDay(series, 31, 4, YearRange{Start: 2000, End: 2023}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	days := []DailyRecord{
		record(day(2020, 7, 1), 10, map[Parameter]float64{
			ParamTemp: 30, ParamRelHumidity: 70, ParamPrecipitation: 5, ParamGust10mMax: 12,
		}),
		record(day(2021, 7, 1), 20, map[Parameter]float64{
			ParamTemp: 20, ParamRelHumidity: 50, ParamPrecipitation: 1, ParamGust10mMax: 18,
		}),
	}

	s := Summarize(days)

	if s.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", s.TotalDays)
	}
	if s.RainDays != 1 {
		t.Errorf("RainDays = %d, want 1 (1mm is not a rain day)", s.RainDays)
	}
	if s.GustMax != 18 {
		t.Errorf("GustMax = %v, want 18", s.GustMax)
	}
	if s.TempMean != 25 {
		t.Errorf("TempMean = %v, want 25", s.TempMean)
	}
	if s.TempMaxMean != 15 || s.SoilTempMean != 15 || s.SolarClearSkyMean != 15 {
		t.Errorf("means of base values should be 15, got %+v", s)
	}

	wantHeat := (HeatIndex(30, 70) + 20) / 2
	if math.Abs(s.HeatIndexMean-wantHeat) > 1e-9 {
		t.Errorf("HeatIndexMean = %v, want %v", s.HeatIndexMean, wantHeat)
	}
}

func TestSummarizeAllValuesFinite(t *testing.T) {
	for n := 1; n <= 5; n++ {
		days := make([]DailyRecord, n)
		for i := range days {
			days[i] = record(day(2000+i, 1, 1), float64(i), nil)
		}

		s := Summarize(days)
		if s.TotalDays != n {
			t.Errorf("n=%d: TotalDays = %d", n, s.TotalDays)
		}

		v := reflect.ValueOf(s)
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if f.Kind() == reflect.Float64 && (math.IsNaN(f.Float()) || math.IsInf(f.Float(), 0)) {
				t.Errorf("n=%d: %s is not finite", n, v.Type().Field(i).Name)
			}
		}
	}
}

func TestRainDaysMonotonic(t *testing.T) {
	days := []DailyRecord{
		record(day(2000, 1, 1), 0, map[Parameter]float64{ParamPrecipitation: 0}),
	}
	base := Summarize(days).RainDays

	withExact := append(days, record(day(2001, 1, 1), 0, map[Parameter]float64{ParamPrecipitation: 1}))
	if got := Summarize(withExact).RainDays; got != base {
		t.Errorf("1mm day changed rain count from %d to %d", base, got)
	}

	withRain := append(withExact, record(day(2002, 1, 1), 0, map[Parameter]float64{ParamPrecipitation: 1.01}))
	if got := Summarize(withRain).RainDays; got != base+1 {
		t.Errorf("rain count = %d, want %d", got, base+1)
	}
}
