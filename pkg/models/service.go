package models

type ServiceCategory string

const (
	ServiceCategoryAll        ServiceCategory = "Todas"
	ServiceCategoryAutomotive ServiceCategory = "Automotriz"
	ServiceCategoryPersonal   ServiceCategory = "Personal"
	ServiceCategoryRealEstate ServiceCategory = "Inmobiliaria"
	ServiceCategoryCitizen    ServiceCategory = "Ciudadana"
	ServiceCategoryCorporate  ServiceCategory = "Empresarial"
)

var ServiceCategories = []ServiceCategory{
	ServiceCategoryAutomotive,
	ServiceCategoryPersonal,
	ServiceCategoryRealEstate,
	ServiceCategoryCitizen,
	ServiceCategoryCorporate,
}

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Price       *int64          `json:"price,omitempty"`
	Benefits    []string        `json:"benefits"`
}

// FormField is one input of a service request form.
type FormField struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Multiline   bool   `json:"multiline"`
}

// IsServiceCategory reports whether c is one of the concrete catalog
// categories. The Todas wildcard is not one.
func IsServiceCategory(c ServiceCategory) bool {
	for _, v := range ServiceCategories {
		if v == c {
			return true
		}
	}
	return false
}
