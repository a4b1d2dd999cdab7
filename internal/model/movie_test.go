//go:build !integration
// +build !integration

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type FlagSuite struct {
	suite.Suite
}

func (suite *FlagSuite) TestUnmarshal(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected Flag
	}{
		{name: "Should accept numeric one", raw: "1", expected: true},
		{name: "Should accept numeric zero", raw: "0", expected: false},
		{name: "Should accept boolean true", raw: "true", expected: true},
		{name: "Should accept boolean false", raw: "false", expected: false},
		{name: "Should accept null as unset", raw: "null", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			var f Flag
			err := json.Unmarshal([]byte(tc.raw), &f)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func (suite *FlagSuite) TestUnmarshalRejectsGarbage(t provider.T) {
	t.Parallel()

	var f Flag
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &f))
}

func (suite *FlagSuite) TestMarshal(t provider.T) {
	t.Parallel()

	on, err := json.Marshal(Flag(true))
	assert.NoError(t, err)
	assert.Equal(t, "1", string(on))

	off, err := json.Marshal(Flag(false))
	assert.NoError(t, err)
	assert.Equal(t, "0", string(off))
}

func (suite *FlagSuite) TestCatalogRecordDecodesMixedFlagStyles(t provider.T) {
	t.Parallel()

	raw := `{
		"showId": "s1",
		"title": "Mixed Flags",
		"releaseYear": 2020,
		"Action": 1,
		"Drama": true,
		"Thriller": 0,
		"Comedy": false,
		"Horror": null
	}`

	var record CatalogRecord
	err := json.Unmarshal([]byte(raw), &record)
	assert.NoError(t, err)
	assert.Equal(t, "s1", record.ShowID)
	assert.True(t, bool(record.Action))
	assert.True(t, bool(record.Drama))
	assert.False(t, bool(record.Thriller))
	assert.False(t, bool(record.Comedy))
	assert.False(t, bool(record.Horror))
}

func TestFlagSuite(t *testing.T) {
	suite.RunSuite(t, new(FlagSuite))
}
