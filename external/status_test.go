package external

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rotorhub/internal/schema"
)

func TestMapStatusPerOperatorVocabulary(t *testing.T) {
	// The same word can mean different things per operator: "landed" is only
	// BHL's spelling of arrived.
	assert.Equal(t, schema.StatusArrived, MapStatus(schema.BHL, "Landed").Code)
	assert.Equal(t, schema.StatusUnknown, MapStatus(schema.NHV, "Landed").Code)

	assert.Equal(t, schema.StatusOutbound, MapStatus(schema.NHV, "Departed").Code)
	assert.Equal(t, schema.StatusOutbound, MapStatus(schema.CHC, "DEPARTED").Code)
	assert.Equal(t, schema.StatusOnTime, MapStatus(schema.NHV, "On-Time").Code)
	assert.Equal(t, schema.StatusOnTime, MapStatus(schema.CHC, "OnTime").Code)
	assert.Equal(t, schema.StatusPreparing, MapStatus(schema.BHL, "Check-In Now").Code)
	assert.Equal(t, schema.StatusPreparing, MapStatus(schema.NHV, "Boarding").Code)
}

func TestMapStatusEmptyMeansOnTimeOnlyForBhl(t *testing.T) {
	assert.Equal(t, schema.StatusOnTime, MapStatus(schema.BHL, "").Code)
	assert.Equal(t, schema.StatusUnknown, MapStatus(schema.NHV, "").Code)
	assert.Equal(t, schema.StatusUnknown, MapStatus(schema.CHC, "").Code)
}

func TestMapStatusKeepsRawTextOnUnknown(t *testing.T) {
	status := MapStatus(schema.CHC, "Diverted to ESB")
	assert.Equal(t, schema.StatusUnknown, status.Code)
	assert.Equal(t, "Diverted to ESB", status.Raw)
	assert.Equal(t, "Diverted to ESB", status.Label())
}

func TestMapStatusUnknownOperator(t *testing.T) {
	status := MapStatus(schema.OHS, "Departed")
	assert.Equal(t, schema.StatusUnknown, status.Code)
	assert.Equal(t, "Departed", status.Raw)
}
