package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Email(t *testing.T) {

	assert := assert.New(t)

	for _, email := range []string{"demo@example.com", "a.b+c@sub.domain.org"} {
		assert.True(Email(email), email)
	}
	for _, email := range []string{"", "plain", "no@tld", "two@@example.com", "with space@example.com"} {
		assert.False(Email(email), email)
	}
}

func Test_Phone(t *testing.T) {

	assert := assert.New(t)

	for _, phone := range []string{"+1 (555) 123-4567", "5551234567"} {
		assert.True(Phone(phone), phone)
	}
	for _, phone := range []string{"", "12345", "call me maybe"} {
		assert.False(Phone(phone), phone)
	}
}

func Test_StrongPassword(t *testing.T) {

	assert := assert.New(t)

	for _, password := range []string{"Passw0rd", "Str0ng&Long!"} {
		assert.True(StrongPassword(password), password)
	}
	for _, password := range []string{
		"short1A",      // too short
		"alllower1",    // no upper
		"ALLUPPER1",    // no lower
		"NoDigitsHere", // no digit
	} {
		assert.False(StrongPassword(password), password)
	}
}
