// Package model defines the core domain models used throughout the application.
package model

// Property labels reported in Classification.Properties.
const (
	PropertyEven      = "even"
	PropertyOdd       = "odd"
	PropertyArmstrong = "armstrong"
)

// Classification is the result of classifying a single integer.
// Field order is the JSON field order clients see.
type Classification struct {
	Number     int64    `json:"number"`
	IsPrime    bool     `json:"is_prime"`
	IsPerfect  bool     `json:"is_perfect"`
	Properties []string `json:"properties"`
	DigitSum   int      `json:"digit_sum"`
	FunFact    string   `json:"fun_fact"`
}

// HasProperty reports whether label is one of the classification's properties.
func (c Classification) HasProperty(label string) bool {
	for _, p := range c.Properties {
		if p == label {
			return true
		}
	}
	return false
}

// InvalidNumberResponse is returned when the number query parameter is
// missing or not an integer. Number echoes the raw input.
type InvalidNumberResponse struct {
	Number string `json:"number"`
	Error  bool   `json:"error"`
}
