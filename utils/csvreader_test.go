package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVRecords(t *testing.T) {
	input := `firstName, lastName, email
Amara, Perera, amara@staffdesk.local
Bimal, Silva, bimal@staffdesk.local
`

	records, err := ParseCSVRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Amara", records[0]["firstName"])
	assert.Equal(t, "Perera", records[0]["lastName"])
	assert.Equal(t, "bimal@staffdesk.local", records[1]["email"])
}

func TestParseCSVRecordsEmpty(t *testing.T) {
	_, err := ParseCSVRecords(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseCSVRecordsRagged(t *testing.T) {
	_, err := ParseCSVRecords(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}
