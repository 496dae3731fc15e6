package enums

import (
	"fmt"
	"strings"
)

type HoroscopeDay string

const (
	DayToday     HoroscopeDay = "TODAY"
	DayTomorrow  HoroscopeDay = "TOMORROW"
	DayYesterday HoroscopeDay = "YESTERDAY"
)

// ParseHoroscopeDay defaults to TODAY for an empty value.
func ParseHoroscopeDay(value string) (HoroscopeDay, error) {
	if strings.TrimSpace(value) == "" {
		return DayToday, nil
	}
	switch day := HoroscopeDay(strings.ToUpper(strings.TrimSpace(value))); day {
	case DayToday, DayTomorrow, DayYesterday:
		return day, nil
	default:
		return "", fmt.Errorf("unknown horoscope day %q", value)
	}
}
