package enums

import (
	"fmt"
	"strings"
)

// ZodiacSign values use the capitalization the horoscope API expects.
type ZodiacSign string

const (
	ZodiacAries       ZodiacSign = "Aries"
	ZodiacTaurus      ZodiacSign = "Taurus"
	ZodiacGemini      ZodiacSign = "Gemini"
	ZodiacCancer      ZodiacSign = "Cancer"
	ZodiacLeo         ZodiacSign = "Leo"
	ZodiacVirgo       ZodiacSign = "Virgo"
	ZodiacLibra       ZodiacSign = "Libra"
	ZodiacScorpio     ZodiacSign = "Scorpio"
	ZodiacSagittarius ZodiacSign = "Sagittarius"
	ZodiacCapricorn   ZodiacSign = "Capricorn"
	ZodiacAquarius    ZodiacSign = "Aquarius"
	ZodiacPisces      ZodiacSign = "Pisces"
)

var zodiacSigns = map[string]ZodiacSign{
	"aries":       ZodiacAries,
	"taurus":      ZodiacTaurus,
	"gemini":      ZodiacGemini,
	"cancer":      ZodiacCancer,
	"leo":         ZodiacLeo,
	"virgo":       ZodiacVirgo,
	"libra":       ZodiacLibra,
	"scorpio":     ZodiacScorpio,
	"sagittarius": ZodiacSagittarius,
	"capricorn":   ZodiacCapricorn,
	"aquarius":    ZodiacAquarius,
	"pisces":      ZodiacPisces,
}

func ParseZodiacSign(value string) (ZodiacSign, error) {
	sign, ok := zodiacSigns[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("unknown zodiac sign %q", value)
	}
	return sign, nil
}
