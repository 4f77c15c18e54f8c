package models

import "time"

type IncidentCategory string

const (
	// IncidentCategoryAll matches every category when filtering.
	IncidentCategoryAll       IncidentCategory = "All"
	IncidentCategorySecurity  IncidentCategory = "Seguridad"
	IncidentCategoryTraffic   IncidentCategory = "Tránsito"
	IncidentCategoryServices  IncidentCategory = "Servicios"
	IncidentCategoryEmergency IncidentCategory = "Emergencia"
	IncidentCategoryOther     IncidentCategory = "Otro"
)

var IncidentCategories = []IncidentCategory{
	IncidentCategorySecurity,
	IncidentCategoryTraffic,
	IncidentCategoryServices,
	IncidentCategoryEmergency,
	IncidentCategoryOther,
}

type IncidentStatus string

const (
	IncidentReported    IncidentStatus = "Reportado"
	IncidentUnderReview IncidentStatus = "En revisión"
	IncidentResolved    IncidentStatus = "Resuelto"
	IncidentClosed      IncidentStatus = "Cerrado"
)

type Incident struct {
	ID          string           `json:"id"`
	UserID      *string          `json:"user_id,omitempty"`
	Category    IncidentCategory `json:"category"`
	Description string           `json:"description"`
	Lat         float64          `json:"lat"`
	Lng         float64          `json:"lng"`
	Anonymous   bool             `json:"anonymous"`
	Photos      []string         `json:"photos,omitempty"`
	VideoURL    *string          `json:"video_url,omitempty"`
	Status      IncidentStatus   `json:"status"`
	Date        time.Time        `json:"date"`
}

// IsCategory reports whether c is one of the closed incident categories.
func IsCategory(c IncidentCategory) bool {
	for _, v := range IncidentCategories {
		if v == c {
			return true
		}
	}
	return false
}
