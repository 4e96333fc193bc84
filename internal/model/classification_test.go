package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification_HasProperty(t *testing.T) {
	c := Classification{Properties: []string{PropertyOdd, PropertyArmstrong}}

	assert.True(t, c.HasProperty(PropertyOdd))
	assert.True(t, c.HasProperty(PropertyArmstrong))
	assert.False(t, c.HasProperty(PropertyEven))
}

func TestClassification_JSONFieldOrder(t *testing.T) {
	c := Classification{
		Number:     371,
		Properties: []string{PropertyOdd, PropertyArmstrong},
		DigitSum:   11,
		FunFact:    "371 is a narcissistic number.",
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t,
		`{"number":371,"is_prime":false,"is_perfect":false,"properties":["odd","armstrong"],"digit_sum":11,"fun_fact":"371 is a narcissistic number."}`,
		string(data))
}
