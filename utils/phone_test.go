package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "6281234567890", NormalizePhoneNumber("0812-3456-7890"))
	assert.Equal(t, "6281234567890", NormalizePhoneNumber("+62 812 3456 7890"))
	assert.Equal(t, "6281234567890", NormalizePhoneNumber("6281234567890"))
	assert.Equal(t, "", NormalizePhoneNumber(""))
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.True(t, ValidatePhoneNumber("0812-3456-7890"))
	assert.True(t, ValidatePhoneNumber("+62 812 3456 789"))
	assert.False(t, ValidatePhoneNumber("021 555 1234")) // landline
	assert.False(t, ValidatePhoneNumber("08"))
	assert.False(t, ValidatePhoneNumber(""))
}

func TestDisplayPhoneNumber(t *testing.T) {
	assert.Equal(t, "+62 81234567890", DisplayPhoneNumber("081234567890"))
	assert.Equal(t, "n/a", DisplayPhoneNumber("n/a"))
}
