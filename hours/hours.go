package hours

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"berkeley-brew-api/models"
)

// Status is the live open/closed state of a cafe.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosed      Status = "closed"
	StatusOpeningSoon Status = "opening-soon"
	StatusClosingSoon Status = "closing-soon"
	StatusUnknown     Status = "unknown"
)

// bufferMinutes is subtracted from a period's stated closing time before
// comparing against the current time, so a cafe reads as closed slightly
// before the nominal closing instant.
const bufferMinutes = 15

// soonWindowMinutes is the lead time within which a cafe is reported as
// opening or closing soon.
const soonWindowMinutes = 60

// OpeningStatus is the display-ready result of resolving a schedule against
// an instant.
type OpeningStatus struct {
	IsOpen     bool           `json:"is_open"`
	Status     Status         `json:"status"`
	StatusText string         `json:"status_text"`
	HoursToday string         `json:"hours_today,omitempty"`
	AllHours   map[int]string `json:"all_hours,omitempty"`
}

// Resolve derives a cafe's live opening status from its raw weekly schedule
// and the given instant. The instant is caller-supplied so the function is
// deterministic; production call sites pass time.Now().
//
// Malformed schedules degrade to the conservative answer (unknown or closed)
// rather than failing. When the schedule carries an explicit open_now flag
// from the external source it is preferred over the local arithmetic, except
// past the (buffered) closing time, where the local computation always wins.
func Resolve(schedule *models.BusinessHours, now time.Time) OpeningStatus {
	if schedule == nil || len(schedule.Periods) == 0 {
		return OpeningStatus{
			IsOpen:     false,
			Status:     StatusUnknown,
			StatusText: "Hours not available",
		}
	}

	currentDay := int(now.Weekday()) // 0 = Sunday, matching the schedule
	currentMinutes := now.Hour()*60 + now.Minute()
	allHours := formatAllHours(schedule.Periods)

	today, ok := periodForDay(schedule.Periods, currentDay)
	if !ok {
		return OpeningStatus{
			IsOpen:     false,
			Status:     StatusClosed,
			StatusText: "Closed today",
			AllHours:   allHours,
		}
	}

	openMinutes, okOpen := parseTimeToMinutes(today.Open.Time)
	closeMinutes, okClose := parseTimeToMinutes(today.Close.Time)
	if !okOpen || !okClose {
		logrus.WithFields(logrus.Fields{
			"open":  today.Open.Time,
			"close": today.Close.Time,
		}).Warn("invalid time string in business hours period")
		return OpeningStatus{
			IsOpen:     false,
			Status:     StatusClosed,
			StatusText: "Closed today",
			AllHours:   allHours,
		}
	}

	var calculatedOpen bool
	if closeMinutes < openMinutes {
		// The period spans midnight
		calculatedOpen = currentMinutes >= openMinutes ||
			currentMinutes < closeMinutes-bufferMinutes
	} else {
		calculatedOpen = currentMinutes >= openMinutes &&
			currentMinutes < closeMinutes-bufferMinutes
	}

	isPastClosing := currentMinutes > closeMinutes-bufferMinutes

	var isOpen bool
	switch {
	case isPastClosing && !calculatedOpen:
		// Past the buffered closing time the local arithmetic wins; an
		// external open_now flag cannot keep a cafe open past its own hours.
		isOpen = false
	case schedule.OpenNow != nil:
		isOpen = *schedule.OpenNow
	default:
		isOpen = calculatedOpen
	}

	status := StatusClosed
	if isOpen {
		status = StatusOpen
	}
	if !isOpen {
		if gap := openMinutes - currentMinutes; gap > 0 && gap <= soonWindowMinutes {
			status = StatusOpeningSoon
		}
	}
	if isOpen {
		if gap := closeMinutes - currentMinutes; gap > 0 && gap <= soonWindowMinutes {
			status = StatusClosingSoon
		}
	}

	return OpeningStatus{
		IsOpen:     isOpen,
		Status:     status,
		StatusText: statusText(status),
		HoursToday: formatRange(today.Open.Time, today.Close.Time),
		AllHours:   allHours,
	}
}

// periodForDay returns the first period opening on the given weekday.
func periodForDay(periods []models.Period, day int) (models.Period, bool) {
	for _, p := range periods {
		if p.Open.Day == day {
			return p, true
		}
	}
	return models.Period{}, false
}

// parseTimeToMinutes converts an "HHMM" string to minutes since midnight.
func parseTimeToMinutes(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(s[2:])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// formatClock renders an "HHMM" string in 12-hour display: "7AM", "7:30PM".
func formatClock(s string) string {
	if len(s) != 4 {
		return s
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return s
	}
	minute := s[2:]
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	if minute == "00" {
		return fmt.Sprintf("%d%s", hour12, meridiem)
	}
	return fmt.Sprintf("%d:%s%s", hour12, minute, meridiem)
}

func formatRange(open, close string) string {
	return formatClock(open) + " - " + formatClock(close)
}

// formatAllHours renders the full week, "Closed" for days with no period.
func formatAllHours(periods []models.Period) map[int]string {
	all := make(map[int]string, 7)
	for day := 0; day < 7; day++ {
		all[day] = "Closed"
	}
	for _, p := range periods {
		if p.Open.Day < 0 || p.Open.Day > 6 {
			continue
		}
		if _, ok := parseTimeToMinutes(p.Open.Time); !ok {
			continue
		}
		if _, ok := parseTimeToMinutes(p.Close.Time); !ok {
			continue
		}
		all[p.Open.Day] = formatRange(p.Open.Time, p.Close.Time)
	}
	return all
}

func statusText(s Status) string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusOpeningSoon:
		return "Opening Soon"
	case StatusClosingSoon:
		return "Closing Soon"
	case StatusClosed:
		return "Closed"
	default:
		return "Hours not available"
	}
}
