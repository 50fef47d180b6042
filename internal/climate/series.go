package climate

import (
	"sort"
)

// NewSeries cleans provider rows into a complete, date-ordered Series.
//
// Each parameter is linearly interpolated by row position across its gaps.
// Gaps after the last known value hold that value; gaps before the first known
// value cannot be filled, and any row still missing a parameter is dropped.
func NewSeries(raw []RawDay) Series {
	if len(raw) == 0 {
		return nil
	}

	rows := make([]RawDay, len(raw))
	copy(rows, raw)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	columns := make(map[Parameter][]*float64, len(Parameters))
	for _, p := range Parameters {
		col := make([]*float64, len(rows))
		for i, r := range rows {
			if v, ok := r.Values[p]; ok && v != nil {
				val := *v
				col[i] = &val
			}
		}
		interpolate(col)
		columns[p] = col
	}

	series := make(Series, 0, len(rows))
	for i, r := range rows {
		rec := DailyRecord{
			Date:   r.Date,
			Values: make(map[Parameter]float64, len(Parameters)),
		}
		complete := true
		for _, p := range Parameters {
			v := columns[p][i]
			if v == nil {
				complete = false
				break
			}
			rec.Values[p] = *v
		}
		if complete {
			series = append(series, rec)
		}
	}

	return series
}

// interpolate fills nil entries in place.
func interpolate(col []*float64) {
	prev := -1
	for i, v := range col {
		if v == nil {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			lo, hi := *col[prev], *v
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				val := lo + (hi-lo)*float64(j-prev)/span
				col[j] = &val
			}
		}
		prev = i
	}

	if prev < 0 {
		return
	}
	last := *col[prev]
	for j := prev + 1; j < len(col); j++ {
		val := last
		col[j] = &val
	}
}

// Lookup returns the first record whose calendar date equals year-month-day.
func (s Series) Lookup(year, month, day int) (DailyRecord, bool) {
	for _, r := range s {
		if r.Date.Year() == year && int(r.Date.Month()) == month && r.Date.Day() == day {
			return r, true
		}
	}
	return DailyRecord{}, false
}
