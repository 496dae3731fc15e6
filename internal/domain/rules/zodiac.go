package rules

import (
	"time"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
)

// ZodiacFromBirthDate maps a Gregorian birth date to its western zodiac sign.
// Boundaries:
// Aries: Mar 21 - Apr 19
// Taurus: Apr 20 - May 20
// Gemini: May 21 - Jun 20
// Cancer: Jun 21 - Jul 22
// Leo: Jul 23 - Aug 22
// Virgo: Aug 23 - Sep 22
// Libra: Sep 23 - Oct 22
// Scorpio: Oct 23 - Nov 21
// Sagittarius: Nov 22 - Dec 21
// Capricorn: Dec 22 - Jan 19
// Aquarius: Jan 20 - Feb 18
// Pisces: Feb 19 - Mar 20
func ZodiacFromBirthDate(d model.Date) enums.ZodiacSign {
	if d.IsZero() {
		return ""
	}

	day := d.Day()

	switch d.Month() {
	case time.March:
		if day >= 21 {
			return enums.ZodiacAries
		}
		return enums.ZodiacPisces
	case time.April:
		if day >= 20 {
			return enums.ZodiacTaurus
		}
		return enums.ZodiacAries
	case time.May:
		if day >= 21 {
			return enums.ZodiacGemini
		}
		return enums.ZodiacTaurus
	case time.June:
		if day >= 21 {
			return enums.ZodiacCancer
		}
		return enums.ZodiacGemini
	case time.July:
		if day >= 23 {
			return enums.ZodiacLeo
		}
		return enums.ZodiacCancer
	case time.August:
		if day >= 23 {
			return enums.ZodiacVirgo
		}
		return enums.ZodiacLeo
	case time.September:
		if day >= 23 {
			return enums.ZodiacLibra
		}
		return enums.ZodiacVirgo
	case time.October:
		if day >= 23 {
			return enums.ZodiacScorpio
		}
		return enums.ZodiacLibra
	case time.November:
		if day >= 22 {
			return enums.ZodiacSagittarius
		}
		return enums.ZodiacScorpio
	case time.December:
		if day >= 22 {
			return enums.ZodiacCapricorn
		}
		return enums.ZodiacSagittarius
	case time.January:
		if day >= 20 {
			return enums.ZodiacAquarius
		}
		return enums.ZodiacCapricorn
	case time.February:
		if day >= 19 {
			return enums.ZodiacPisces
		}
		return enums.ZodiacAquarius
	default:
		return ""
	}
}
