package climate

import (
	"errors"
	"testing"
)

func TestExtractDayMonth(t *testing.T) {
	tests := []struct {
		input string
		day   int
		month int
	}{
		{input: "2025-10-05", day: 5, month: 10},
		{input: "2025-10-05T14:23:00", day: 5, month: 10},
		{input: "2025-10-05 14:23:00.123456", day: 5, month: 10},
		{input: "2025-10-05T14:23:00Z", day: 5, month: 10},
		{input: "2025-10-05T23:30:00-05:00", day: 5, month: 10},
		{input: "2024-02-29T08:00", day: 29, month: 2},
		{input: "2025-12-31 23:59:59 extra text", day: 31, month: 12},
		{input: "2025-10-05T14:23:00+0530", day: 5, month: 10},
		{input: "2025-10-05 14:23:00.5-0300", day: 5, month: 10},
		{input: "2025-10-05 14:23Z", day: 5, month: 10},
		{input: "2025-10-05T14:23+0100", day: 5, month: 10},
		{input: "2025-10-05T14Z", day: 5, month: 10},
		{input: "20251005T142300", day: 5, month: 10},
		{input: "2025-W40-7", day: 5, month: 10},
		{input: "2025W407", day: 5, month: 10},
		{input: "2025-W40", day: 29, month: 9},
		{input: "2021-W01-1", day: 4, month: 1},
		{input: "2020-W53-5", day: 1, month: 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, month, err := ExtractDayMonth(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if day != tt.day || month != tt.month {
				t.Errorf("ExtractDayMonth(%q) = (%d, %d), want (%d, %d)", tt.input, day, month, tt.day, tt.month)
			}
		})
	}
}

func TestExtractDayMonthInvalid(t *testing.T) {
	for _, input := range []string{"not-a-date", "", "2025-13-01", "2023-02-29", "05/10/2025", "2025-W54-1", "2021-W53-1", "2025-W40-8"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ExtractDayMonth(input)
			if err == nil {
				t.Fatalf("expected error for %q", input)
			}

			var dateErr *DateFormatError
			if !errors.As(err, &dateErr) {
				t.Fatalf("expected *DateFormatError, got %T", err)
			}
			if dateErr.Value != input {
				t.Errorf("error carries %q, want %q", dateErr.Value, input)
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected error to match ErrInvalidParameter")
			}
		})
	}
}
