package models

// Service delivery modes of a main type of care.
const (
	DeliveryResidential   = "RESIDENTIAL"
	DeliveryDayCare       = "DAY_CARE"
	DeliveryOutpatient    = "OUTPATIENT"
	DeliveryAccessibility = "ACCESSIBILITY"
	DeliveryInformation   = "INFORMATION"
)

// MainTypeOfCare is an MTC node of the DESDE-LTC classification tree.
// ParentCode forms the hierarchy; Level caches the depth from the root.
type MainTypeOfCare struct {
	ID                  string `json:"id" bson:"_id,omitempty"`
	Code                string `json:"code" bson:"code"`
	Name                string `json:"name" bson:"name"`
	Description         string `json:"description,omitempty" bson:"description,omitempty"`
	ParentCode          string `json:"parentCode,omitempty" bson:"parentCode,omitempty"`
	IsHealthcare        bool   `json:"isHealthcare" bson:"isHealthcare"`
	ServiceDeliveryType string `json:"serviceDeliveryType,omitempty" bson:"serviceDeliveryType,omitempty"`
	Level               int    `json:"level" bson:"level"`
	IsActive            bool   `json:"isActive" bson:"isActive"`
	TimeModel           `bson:",inline"`
}

// BasicStableInputsOfCare is a BSIC code of the DESDE-LTC classification.
type BasicStableInputsOfCare struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Code        string `json:"code" bson:"code"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool   `json:"isActive" bson:"isActive"`
	TimeModel   `bson:",inline"`
}
