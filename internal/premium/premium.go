package premium

import "strings"

// Premiums below this are eligible for a grant when the risk is acceptable.
const grantThreshold = 10000

// RiskMultiplier maps a risk factor to its damage multiplier. Unknown factors
// fall back to 1.0.
func RiskMultiplier(risk string) float64 {
	switch strings.ToLower(strings.TrimSpace(risk)) {
	case "low":
		return 1.0
	case "medium":
		return 1.5
	case "high":
		return 2.0
	default:
		return 1.0
	}
}

// Calculate computes the final premium:
// base + damage*multiplier(risk) - base*(discount/100).
func Calculate(base, vehicleDamage, discount float64, risk string) float64 {
	return base + vehicleDamage*RiskMultiplier(risk) - base*(discount/100)
}

// Granted reports whether insurance is granted for the given computed premium
// and risk factor. Only low and medium risks below the threshold qualify.
func Granted(calculated float64, risk string) bool {
	r := strings.ToLower(strings.TrimSpace(risk))
	return calculated < grantThreshold && (r == "low" || r == "medium")
}

// Decision renders the grant outcome as stored in processed results.
func Decision(calculated float64, risk string) string {
	if Granted(calculated, risk) {
		return "Granted"
	}
	return "Rejected"
}
