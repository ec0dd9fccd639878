package models

// PolicyBatch is the expected shape of uploaded documents. Uploads that do not
// match it are still persisted as raw documents; no schema is enforced beyond
// JSON well-formedness.
type PolicyBatch struct {
	Branches []Branch `json:"branches"`
}

type Branch struct {
	BranchID string        `json:"branch_id"`
	Policies []BatchPolicy `json:"policies"`
}

type BatchPolicy struct {
	PolicyID     string            `json:"policy_id"`
	PolicyType   string            `json:"policy_type"`
	BasePremium  float64           `json:"base_premium"`
	RiskFactor   string            `json:"risk_factor"`
	CustomerInfo BatchCustomerInfo `json:"customer_info"`
	VehicleInfo  BatchVehicleInfo  `json:"vehicle_info"`
	CoverageInfo BatchCoverageInfo `json:"coverage_info"`
}

type BatchCustomerInfo struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
}

type BatchVehicleInfo struct {
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	VehicleDamage float64 `json:"vehicle_damage"`
}

type BatchCoverageInfo struct {
	Liability     float64 `json:"liability"`
	Collision     float64 `json:"collision"`
	Comprehensive float64 `json:"comprehensive"`
	Discount      float64 `json:"discount"`
}

// ProcessedPolicy is one row of the processed-results object published to the
// source bucket after a successful ingest.
type ProcessedPolicy struct {
	PolicyID          string  `json:"policy_id"`
	PolicyType        string  `json:"policy_type"`
	BasePremium       float64 `json:"base_premium"`
	VehicleDamage     float64 `json:"vehicle_damage"`
	RiskFactor        string  `json:"risk_factor"`
	Discount          float64 `json:"discount"`
	CalculatedPremium float64 `json:"calculated_premium"`
	InsuranceGranted  string  `json:"insurance_granted"`
}
