package premium

import "testing"

func TestRiskMultiplier(t *testing.T) {
	cases := map[string]float64{
		"low":     1.0,
		"medium":  1.5,
		"high":    2.0,
		"LOW":     1.0,
		" Medium": 1.5,
		"unknown": 1.0,
		"":        1.0,
	}
	for in, want := range cases {
		if got := RiskMultiplier(in); got != want {
			t.Fatalf("RiskMultiplier(%q)=%v; want %v", in, got, want)
		}
	}
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		base, damage, discount float64
		risk                   string
		want                   float64
	}{
		// base + damage*mult - base*discount/100
		{5000, 1000, 10, "low", 5000 + 1000 - 500},
		{5000, 1000, 10, "medium", 5000 + 1500 - 500},
		{5000, 1000, 0, "high", 5000 + 2000},
		{8000, 0, 25, "weird", 8000 - 2000},
	}
	for _, c := range cases {
		if got := Calculate(c.base, c.damage, c.discount, c.risk); got != c.want {
			t.Fatalf("Calculate(%v,%v,%v,%q)=%v; want %v", c.base, c.damage, c.discount, c.risk, got, c.want)
		}
	}
}

func TestDecision(t *testing.T) {
	cases := []struct {
		calculated float64
		risk       string
		want       string
	}{
		{9999, "low", "Granted"},
		{9999, "medium", "Granted"},
		{9999, "high", "Rejected"},
		{10000, "low", "Rejected"},
		{15000, "medium", "Rejected"},
		{100, "unknown", "Rejected"},
	}
	for _, c := range cases {
		if got := Decision(c.calculated, c.risk); got != c.want {
			t.Fatalf("Decision(%v,%q)=%q; want %q", c.calculated, c.risk, got, c.want)
		}
	}
}
