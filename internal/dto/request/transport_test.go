package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AbsentCountersBecomeZero(t *testing.T) {
	var input TransportSegmentInput
	err := json.Unmarshal([]byte(`{
		"departure_date": "2025-06-02",
		"flight_number": "TB-101",
		"from": "Москва",
		"to": "Анталья",
		"passengers": {"adults": 2, "children": 1}
	}`), &input)
	assert.NoError(t, err)

	counts := input.Passengers.Normalize()

	assert.Equal(t, 2, counts.Adults)
	assert.Equal(t, 1, counts.Children)
	assert.Equal(t, 0, counts.Infants)
	assert.Equal(t, 0, counts.InfantsWithoutSeat)
	assert.Equal(t, 0, counts.AdultsBusiness)
	assert.Equal(t, 0, counts.InfantsComfort)
	assert.Equal(t, 3, counts.Total())
}

func TestNormalize_RoundTripPreservesCounts(t *testing.T) {
	two, one := 2, 1
	input := PassengerCountsInput{
		Adults:          &two,
		ChildrenComfort: &one,
		InfantsBusiness: &one,
	}

	raw, err := json.Marshal(input)
	assert.NoError(t, err)

	var decoded PassengerCountsInput
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, input.Normalize(), decoded.Normalize())
	assert.Equal(t, 4, decoded.Normalize().Total())
}

func TestNormalize_ExplicitZeroStaysZero(t *testing.T) {
	zero := 0
	input := PassengerCountsInput{Adults: &zero}

	counts := input.Normalize()
	assert.Equal(t, 0, counts.Adults)
	assert.Equal(t, 0, counts.Total())
}
