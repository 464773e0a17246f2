package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SeriesPoint is a single sample of an imported measurement series. All
// points of one upload share the same identifier; the index preserves
// the order of the rows in the uploaded file.
type SeriesPoint struct {
	ID         uint      `gorm:"primaryKey"`
	Identifier string    `gorm:"index"`
	DatasetID  uuid.UUID `gorm:"type:uuid;index:idx_series_points_dataset"`
	SeriesType string    `gorm:"index:idx_series_points_dataset"`
	Index      int       `gorm:"column:idx"`
	Value      float64
	CreatedAt  time.Time
}

func (s SeriesPoint) TableName() string {
	return "series_points"
}

// SeriesIdentifier derives the stable identifier for a dataset/series
// pair: "import_" + the dataset UUID without hyphens + "_" + the series
// type lowercased with every non-alphanumeric character replaced by '_'.
func SeriesIdentifier(datasetID uuid.UUID, seriesType string) string {
	var sb strings.Builder
	sb.WriteString("import_")
	sb.WriteString(strings.ReplaceAll(datasetID.String(), "-", ""))
	sb.WriteByte('_')
	for _, r := range strings.ToLower(seriesType) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
