package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuery_PreservesCallerOrder(t *testing.T) {
	got := EncodeQuery([]Param{
		{Key: "source", Value: "app"},
		{Key: "eventType", Value: "user.created"},
		{Key: "cursor", Value: "c1"},
		{Key: "limit", Value: "10"},
	})
	assert.Equal(t, "source=app&eventType=user.created&cursor=c1&limit=10", got)
}

func TestEncodeQuery_OmitsEmptyValues(t *testing.T) {
	got := EncodeQuery([]Param{
		{Key: "source", Value: ""},
		{Key: "cursor", Value: "c1"},
		{Key: "", Value: "orphan"},
	})
	assert.Equal(t, "cursor=c1", got)
}

func TestEncodeQuery_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeQuery(nil))
	assert.Equal(t, "", EncodeQuery([]Param{}))
}

func TestEncodeQuery_EscapesReservedCharacters(t *testing.T) {
	got := EncodeQuery([]Param{
		{Key: "eventType", Value: "user created&deleted"},
	})
	assert.Equal(t, "eventType=user+created%26deleted", got)
}

func TestEncodeQuery_ForwardsZeroAndNegativeLimits(t *testing.T) {
	// The client does not enforce limit bounds; the server rejects them.
	assert.Equal(t, "limit=0", EncodeQuery([]Param{{Key: "limit", Value: "0"}}))
	assert.Equal(t, "limit=-5", EncodeQuery([]Param{{Key: "limit", Value: "-5"}}))
}
