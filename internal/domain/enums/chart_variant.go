package enums

import (
	"fmt"
	"strings"
)

// ChartVariant is a divisional chart code understood by the astrology API.
type ChartVariant string

const (
	ChartD1  ChartVariant = "d1"
	ChartD2  ChartVariant = "d2"
	ChartD3  ChartVariant = "d3"
	ChartD4  ChartVariant = "d4"
	ChartD5  ChartVariant = "d5"
	ChartD7  ChartVariant = "d7"
	ChartD8  ChartVariant = "d8"
	ChartD9  ChartVariant = "d9"
	ChartD10 ChartVariant = "d10"
	ChartD12 ChartVariant = "d12"
	ChartD16 ChartVariant = "d16"
	ChartD20 ChartVariant = "d20"
	ChartD24 ChartVariant = "d24"
	ChartD27 ChartVariant = "d27"
	ChartD30 ChartVariant = "d30"
	ChartD40 ChartVariant = "d40"
	ChartD45 ChartVariant = "d45"
	ChartD60 ChartVariant = "d60"
)

var chartVariants = map[string]ChartVariant{
	"d1": ChartD1, "d2": ChartD2, "d3": ChartD3, "d4": ChartD4,
	"d5": ChartD5, "d7": ChartD7, "d8": ChartD8, "d9": ChartD9,
	"d10": ChartD10, "d12": ChartD12, "d16": ChartD16, "d20": ChartD20,
	"d24": ChartD24, "d27": ChartD27, "d30": ChartD30, "d40": ChartD40,
	"d45": ChartD45, "d60": ChartD60,

	// Named charts kept as route aliases.
	"general": ChartD1,
	"navamsa": ChartD9,
	"dasamsa": ChartD10,
}

func ParseChartVariant(value string) (ChartVariant, error) {
	variant, ok := chartVariants[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("unknown chart variant %q", value)
	}
	return variant, nil
}
