package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_ValidNumberBecomesE164(t *testing.T) {
	assert.Equal(t, "+919876543210", Canonical("98765 43210", "IN"))
	assert.Equal(t, "+919876543210", Canonical("+91 98765-43210", "IN"))
}

func TestCanonical_SameNumberDifferentPunctuationCollides(t *testing.T) {
	a := Canonical("(987) 654-3210", "IN")
	b := Canonical("9876543210", "IN")
	assert.Equal(t, a, b)
}

func TestCanonical_UnparseableFallsBackToDigits(t *testing.T) {
	assert.Equal(t, "12345", Canonical("ext. 1-23-45", "IN"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "919876543210", Digits("+91 (98765) 432-10"))
	assert.Equal(t, "", Digits("no digits"))
}

func TestDispatchFormat_TenDigitsGetsCountryCode(t *testing.T) {
	assert.Equal(t, "919876543210", DispatchFormat("98765 43210", "91"))
}

func TestDispatchFormat_OtherLengthsPassThrough(t *testing.T) {
	assert.Equal(t, "919876543210", DispatchFormat("+91 98765 43210", "91"))
	assert.Equal(t, "12345", DispatchFormat("12345", "91"))
}

func TestValidate(t *testing.T) {
	e164, err := Validate("9876543210", "IN")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", e164)

	_, err = Validate("", "IN")
	assert.Error(t, err)

	_, err = Validate("123", "IN")
	assert.Error(t, err)
}
