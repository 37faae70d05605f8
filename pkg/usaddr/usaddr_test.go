package usaddr

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullAddress(t *testing.T) {
	addr, err := Parse("4600 Silver Hill Rd., Suitland, MD")
	require.NoError(t, err)

	assert.Equal(t, "4600", addr.Number)
	assert.Equal(t, "Silver Hill", addr.Street)
	assert.Equal(t, "Rd.", addr.Type)
	assert.Empty(t, addr.Suffix)
	assert.Equal(t, "Suitland", addr.City)
	assert.Equal(t, "MD", addr.State)
}

func TestParse_DirectionalSuffix(t *testing.T) {
	addr, err := Parse("1600 Pennsylvania Ave NW, Washington, DC")
	require.NoError(t, err)

	assert.Equal(t, "1600", addr.Number)
	assert.Equal(t, "Pennsylvania", addr.Street)
	assert.Equal(t, "Ave", addr.Type)
	assert.Equal(t, "NW", addr.Suffix)
	assert.Equal(t, "Washington", addr.City)
	assert.Equal(t, "DC", addr.State)
}

func TestParse_CityStateOnly(t *testing.T) {
	addr, err := Parse("Denver, CO")
	require.NoError(t, err)

	assert.Empty(t, addr.Number)
	assert.Empty(t, addr.Street)
	assert.Equal(t, "Denver", addr.City)
	assert.Equal(t, "CO", addr.State)
}

func TestParse_MultiWordState(t *testing.T) {
	addr, err := Parse("123 S. West Street, Santa Fe, New Mexico")
	require.NoError(t, err)

	assert.Equal(t, "123", addr.Number)
	assert.Equal(t, "S. West", addr.Street)
	assert.Equal(t, "Street", addr.Type)
	assert.Equal(t, "Santa Fe", addr.City)
	assert.Equal(t, "New Mexico", addr.State)
}

func TestParse_NoStructure(t *testing.T) {
	for _, input := range []string{"monkeys", "", "   ", "just one segment here"} {
		_, err := Parse(input)
		assert.True(t, eris.Is(err, ErrNoAddress), "input %q", input)
	}
}

func TestParse_UnrecognizedTokensStayInStreet(t *testing.T) {
	addr, err := Parse("500 Main Esplanade, Springfield, IL")
	require.NoError(t, err)

	assert.Equal(t, "500", addr.Number)
	assert.Equal(t, "Main Esplanade", addr.Street)
	assert.Empty(t, addr.Type)
}

func TestParse_StreetTypeAloneStaysStreet(t *testing.T) {
	// A lone token is never popped into Type; "Broadway" style names survive.
	addr, err := Parse("Broadway, New York, NY")
	require.NoError(t, err)

	assert.Equal(t, "Broadway", addr.Street)
	assert.Empty(t, addr.Type)
}
