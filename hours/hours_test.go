package hours

import (
	"testing"
	"time"

	"berkeley-brew-api/models"
)

// at builds an instant on a fixed week: day 0 is Sunday 2026-03-01.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, 1+day, hour, minute, 0, 0, time.UTC)
}

func boolPtr(v bool) *bool { return &v }

func weekdaySchedule(open, close string) *models.BusinessHours {
	var periods []models.Period
	for day := 1; day <= 5; day++ {
		periods = append(periods, models.Period{
			Open:  models.TimeOfDay{Day: day, Time: open},
			Close: models.TimeOfDay{Day: day, Time: close},
		})
	}
	return &models.BusinessHours{Periods: periods}
}

func TestResolveNoSchedule(t *testing.T) {
	for name, schedule := range map[string]*models.BusinessHours{
		"nil":     nil,
		"empty":   {},
		"no flag": {OpenNow: boolPtr(true)},
	} {
		got := Resolve(schedule, at(1, 12, 0))
		if got.Status != StatusUnknown {
			t.Errorf("%s: expected unknown, got %s", name, got.Status)
		}
		if got.IsOpen {
			t.Errorf("%s: expected not open", name)
		}
		if got.StatusText != "Hours not available" {
			t.Errorf("%s: unexpected status text %q", name, got.StatusText)
		}
		if got.HoursToday != "" {
			t.Errorf("%s: expected no hours today, got %q", name, got.HoursToday)
		}
	}
}

func TestResolveClosedToday(t *testing.T) {
	schedule := weekdaySchedule("0700", "1900")

	// Sunday has no period
	got := Resolve(schedule, at(0, 12, 0))
	if got.Status != StatusClosed || got.IsOpen {
		t.Errorf("expected closed on a day with no period, got %+v", got)
	}
	if got.StatusText != "Closed today" {
		t.Errorf("unexpected status text %q", got.StatusText)
	}
	if got.HoursToday != "" {
		t.Errorf("expected no hours today, got %q", got.HoursToday)
	}
	if got.AllHours[0] != "Closed" {
		t.Errorf("expected Sunday listed as Closed, got %q", got.AllHours[0])
	}
	if got.AllHours[1] != "7AM - 7PM" {
		t.Errorf("expected Monday hours formatted, got %q", got.AllHours[1])
	}
}

func TestResolveOpenMidday(t *testing.T) {
	schedule := weekdaySchedule("0700", "1900")

	got := Resolve(schedule, at(2, 12, 0))
	if !got.IsOpen || got.Status != StatusOpen {
		t.Errorf("expected open at midday, got %+v", got)
	}
	if got.StatusText != "Open" {
		t.Errorf("unexpected status text %q", got.StatusText)
	}
	if got.HoursToday != "7AM - 7PM" {
		t.Errorf("unexpected hours today %q", got.HoursToday)
	}
}

func TestResolveCloseBuffer(t *testing.T) {
	schedule := weekdaySchedule("0700", "1900")

	// 18:44 is still inside the buffered window, 18:46 is not
	if got := Resolve(schedule, at(2, 18, 44)); !got.IsOpen {
		t.Errorf("expected open at 18:44, got %+v", got)
	}
	if got := Resolve(schedule, at(2, 18, 46)); got.IsOpen {
		t.Errorf("expected closed at 18:46 with 15-minute buffer, got %+v", got)
	}
}

func TestResolveOpeningSoon(t *testing.T) {
	schedule := weekdaySchedule("0700", "1900")

	got := Resolve(schedule, at(2, 6, 30))
	if got.IsOpen {
		t.Errorf("expected not open at 6:30, got %+v", got)
	}
	if got.Status != StatusOpeningSoon {
		t.Errorf("expected opening-soon, got %s", got.Status)
	}
	if got.StatusText != "Opening Soon" {
		t.Errorf("unexpected status text %q", got.StatusText)
	}

	// More than an hour out it is simply closed
	if got := Resolve(schedule, at(2, 5, 30)); got.Status != StatusClosed {
		t.Errorf("expected closed at 5:30, got %s", got.Status)
	}
}

func TestResolveClosingSoon(t *testing.T) {
	schedule := weekdaySchedule("0700", "1900")

	got := Resolve(schedule, at(2, 18, 10))
	if !got.IsOpen {
		t.Errorf("expected still open at 18:10, got %+v", got)
	}
	if got.Status != StatusClosingSoon {
		t.Errorf("expected closing-soon, got %s", got.Status)
	}
}

func TestResolveOvernight(t *testing.T) {
	schedule := &models.BusinessHours{Periods: []models.Period{{
		Open:  models.TimeOfDay{Day: 2, Time: "2200"},
		Close: models.TimeOfDay{Day: 2, Time: "0600"},
	}}}

	if got := Resolve(schedule, at(2, 23, 30)); !got.IsOpen {
		t.Errorf("expected open at 23:30 for overnight period, got %+v", got)
	}
	if got := Resolve(schedule, at(2, 7, 0)); got.IsOpen {
		t.Errorf("expected closed at 07:00 for overnight period, got %+v", got)
	}
	// Pre-midnight side honors the close buffer on the far side
	if got := Resolve(schedule, at(2, 5, 50)); got.IsOpen {
		t.Errorf("expected closed at 05:50 inside overnight buffer, got %+v", got)
	}
}

func TestResolveOpenNowFlag(t *testing.T) {
	// Holiday closure: the external flag says closed in the middle of the
	// scheduled window, and wins.
	closed := weekdaySchedule("0700", "1900")
	closed.OpenNow = boolPtr(false)
	if got := Resolve(closed, at(2, 12, 0)); got.IsOpen {
		t.Errorf("expected external closed flag to win midday, got %+v", got)
	}

	// Before opening the flag may also report open early
	early := weekdaySchedule("0700", "1900")
	early.OpenNow = boolPtr(true)
	if got := Resolve(early, at(2, 6, 0)); !got.IsOpen {
		t.Errorf("expected external open flag to win before opening, got %+v", got)
	}

	// Past the buffered closing time the flag cannot keep the cafe open
	late := weekdaySchedule("0700", "1900")
	late.OpenNow = boolPtr(true)
	if got := Resolve(late, at(2, 19, 30)); got.IsOpen {
		t.Errorf("expected local computation to win past closing, got %+v", got)
	}
}

func TestResolveInvalidTimes(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
	}{
		{"bad hour", "9900", "1900"},
		{"bad minute", "0700", "1999"},
		{"short", "700", "1900"},
		{"garbage", "07xx", "1900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := &models.BusinessHours{Periods: []models.Period{{
				Open:  models.TimeOfDay{Day: 2, Time: tt.open},
				Close: models.TimeOfDay{Day: 2, Time: tt.close},
			}}}
			got := Resolve(schedule, at(2, 12, 0))
			if got.IsOpen {
				t.Errorf("expected conservative closed for invalid time, got %+v", got)
			}
			if got.Status != StatusClosed {
				t.Errorf("expected closed status, got %s", got.Status)
			}
		})
	}
}

func TestResolveAllHours(t *testing.T) {
	schedule := &models.BusinessHours{Periods: []models.Period{
		{Open: models.TimeOfDay{Day: 1, Time: "0730"}, Close: models.TimeOfDay{Day: 1, Time: "1930"}},
		{Open: models.TimeOfDay{Day: 6, Time: "0000"}, Close: models.TimeOfDay{Day: 6, Time: "1200"}},
	}}

	got := Resolve(schedule, at(1, 12, 0))
	if got.HoursToday != "7:30AM - 7:30PM" {
		t.Errorf("unexpected hours today %q", got.HoursToday)
	}
	if len(got.AllHours) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(got.AllHours))
	}
	if got.AllHours[1] != "7:30AM - 7:30PM" {
		t.Errorf("unexpected Monday %q", got.AllHours[1])
	}
	if got.AllHours[6] != "12AM - 12PM" {
		t.Errorf("unexpected Saturday %q", got.AllHours[6])
	}
	for _, day := range []int{0, 2, 3, 4, 5} {
		if got.AllHours[day] != "Closed" {
			t.Errorf("expected day %d Closed, got %q", day, got.AllHours[day])
		}
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0000", 0, true},
		{"0730", 450, true},
		{"2359", 1439, true},
		{"2400", 0, false},
		{"0060", 0, false},
		{"730", 0, false},
		{"", 0, false},
		{"ab30", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseTimeToMinutes(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseTimeToMinutes(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
