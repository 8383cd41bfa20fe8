package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("mason@rivercity.co"))
	assert.False(t, IsValidEmail("mason@rivercity"))
	assert.False(t, IsValidEmail("not an email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("(502) 555-0133"))
	assert.True(t, IsValidPhone("+1.502.555.0133"))
	assert.False(t, IsValidPhone("call me maybe"))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://rivercity.co"))
	assert.True(t, IsValidURL("http://rivercity.co/about"))
	assert.False(t, IsValidURL("rivercity.co"))
	assert.False(t, IsValidURL("ftp://rivercity.co"))
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	assert.True(t, fe.Empty())
	fe.Add("name", "Name must be at least 2 characters")
	fe.Add("name", "too plain")
	assert.False(t, fe.Empty())
	assert.Len(t, fe["name"], 2)
}
