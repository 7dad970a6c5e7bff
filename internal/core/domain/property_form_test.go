package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequiresAgent(t *testing.T) {
	for _, agentID := range []string{"", "   ", "abc"} {
		_, err := PropertyForm{Title: "House", AssignedAgentID: agentID}.Normalize()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, MsgAgentRequired, err.Error())
	}
}

func TestNormalizeMapsEmptyFieldsToNil(t *testing.T) {
	form := PropertyForm{
		Title:            "Lake house",
		Address:          "1 Lake Rd",
		Price:            "250000",
		Type:             "House",
		Status:           "AVAILABLE",
		Bedrooms:         "",
		Bathrooms:        "2",
		AreaSqFt:         "",
		AdditionalImages: " https://a/1.jpg, ,https://a/2.jpg ,",
		Facilities:       []string{"Gym", "", "Parking"},
		AssignedAgentID:  "7",
	}

	p, err := form.Normalize()
	require.NoError(t, err)

	require.NotNil(t, p.Price)
	assert.Equal(t, 250000.0, *p.Price)
	assert.Nil(t, p.Bedrooms)
	require.NotNil(t, p.Bathrooms)
	assert.Equal(t, 2, *p.Bathrooms)
	assert.Nil(t, p.AreaSqFt)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.ImageURL)
	assert.Nil(t, p.HouseRules)
	assert.Equal(t, []string{"https://a/1.jpg", "https://a/2.jpg"}, p.ImageURLs)
	assert.Equal(t, []string{"Gym", "Parking"}, p.Facilities)
	assert.Equal(t, int64(7), p.AssignedAgentID)
}

func TestNumericCoercion(t *testing.T) {
	intCases := map[string]*int{
		"3":    intPtr(3),
		" 4 ":  intPtr(4),
		"3.7":  intPtr(3),
		"12ab": intPtr(12),
		"-2":   intPtr(-2),
		"ab":   nil,
		"":     nil,
	}
	for in, want := range intCases {
		assert.Equal(t, want, parseLeadingInt(in), "parseLeadingInt(%q)", in)
	}

	floatCases := map[string]*float64{
		"1200.5":  floatPtr(1200.5),
		"1e3":     floatPtr(1000),
		"99 sqft": floatPtr(99),
		".5":      floatPtr(0.5),
		"-.25m":   floatPtr(-0.25),
		"7.":      floatPtr(7),
		"1.5e+2x": floatPtr(150),
		"2e":      floatPtr(2),
		"3e-":     floatPtr(3),
		"0x1p3":   floatPtr(0),
		"1_000":   floatPtr(1),
		"1e999":   nil,
		"Inf":     nil,
		".":       nil,
		"-":       nil,
		"sqft":    nil,
		"":        nil,
	}
	for in, want := range floatCases {
		assert.Equal(t, want, parseLeadingFloat(in), "parseLeadingFloat(%q)", in)
	}
}

func TestNormalizeLongFieldsIsLinear(t *testing.T) {
	const size = 200_000
	form := PropertyForm{
		Price:           strings.Repeat("a", size),
		AreaSqFt:        "1" + strings.Repeat("9", size) + "x",
		Bedrooms:        strings.Repeat("7", size),
		AssignedAgentID: "1",
	}

	started := time.Now()
	p, err := form.Normalize()
	elapsed := time.Since(started)

	require.NoError(t, err)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.AreaSqFt, "overflows to +Inf")
	assert.Nil(t, p.Bedrooms, "overflows int")
	assert.Less(t, elapsed, 50*time.Millisecond)
}

func TestSplitImageListNeverNil(t *testing.T) {
	assert.Equal(t, []string{}, SplitImageList(""))
	assert.Equal(t, []string{}, SplitImageList(" , ,"))
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
