package service

import (
	"fmt"
	"strings"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

// seriesTypeNames maps a series type to its Italian and English display
// names. Unknown types fall back to the raw token in both languages.
var seriesTypeNames = map[api.SeriesType][2]string{
	api.SeriesTypeRainfall:     {"pioggia", "rainfall"},
	api.SeriesTypeWaterTable:   {"falda", "water table"},
	api.SeriesTypeDisplacement: {"spostamento", "displacement"},
}

func dataNotFoundMessage(seriesType api.SeriesType) api.LocalizedMessage {
	nameIt, nameEn := string(seriesType), string(seriesType)
	if names, ok := seriesTypeNames[seriesType]; ok {
		nameIt, nameEn = names[0], names[1]
	}
	return api.LocalizedMessage{
		It: fmt.Sprintf("Dati di %s non trovati per questo dataset.", nameIt),
		En: fmt.Sprintf("%s data not found for this dataset.", capitalize(nameEn)),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
