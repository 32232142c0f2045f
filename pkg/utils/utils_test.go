package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"store\": \"Colwood\"\n}", PrettyJson(map[string]string{"store": "Colwood"}))
}
