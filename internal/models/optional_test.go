package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_Unmarshal(t *testing.T) {
	var body struct {
		Title   OptionalString `json:"title"`
		Content OptionalString `json:"content"`
		Image   OptionalString `json:"Image"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","Image":null}`), &body))

	assert.Equal(t, Some("New"), body.Title)
	assert.True(t, body.Title.Truthy())

	assert.False(t, body.Content.Set)
	assert.False(t, body.Content.Truthy())

	assert.Equal(t, Null(), body.Image)
	assert.False(t, body.Image.Truthy())
	assert.Nil(t, body.Image.Ptr())
}

func TestOptionalString_EmptyStringIsSetButNotTruthy(t *testing.T) {
	var o OptionalString
	require.NoError(t, json.Unmarshal([]byte(`""`), &o))

	assert.True(t, o.Set)
	assert.True(t, o.Valid)
	assert.False(t, o.Truthy())
	require.NotNil(t, o.Ptr())
	assert.Equal(t, "", *o.Ptr())
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var o OptionalString
	assert.Error(t, json.Unmarshal([]byte(`42`), &o))
}
