package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	got, err := ExtractJSONObject(`Sure! Here is the result: {"title":"Gajah","artists":["Tulus"]} Hope that helps.`)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Gajah","artists":["Tulus"]}`, got)
}

func TestExtractJSONObjectNested(t *testing.T) {
	got, err := ExtractJSONObject(`{"outer":{"inner":1}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"outer":{"inner":1}}`, got)
}

func TestExtractJSONObjectBracesInsideStrings(t *testing.T) {
	got, err := ExtractJSONObject(`{"title":"a } b {","artists":["x\"y"]}`)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"a } b {","artists":["x\"y"]}`, got)
}

func TestExtractJSONObjectSkipsMalformedCandidate(t *testing.T) {
	got, err := ExtractJSONObject(`{not json} but then {"ok":true}`)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, got)
}

func TestExtractJSONObjectNone(t *testing.T) {
	_, err := ExtractJSONObject("no object at all")
	assert.Error(t, err)
}
