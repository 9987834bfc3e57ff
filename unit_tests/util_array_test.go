package unit_tests

import (
	"math"
	"testing"

	U "mta/util"

	"github.com/stretchr/testify/assert"
)

func TestContainsStringInArray(t *testing.T) {
	array := []string{"str1", "str2", "str3", "str4", "str5"}
	result := U.ContainsStringInArray(array, "str2")
	assert.True(t, result)

	result = U.ContainsStringInArray(array, "str6")
	assert.False(t, result)
}

func TestAppendNonNullValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, U.AppendNonNullValues("", "a", "", "b"))
	assert.Empty(t, U.AppendNonNullValues())
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"linear", "time_decay"}, U.SplitAndTrim(" linear, ,time_decay ", ","))
	assert.Empty(t, U.SplitAndTrim("", ","))
}

func TestFloatRoundOffWithPrecision(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      float64
	}{
		{1.0 / 3.0, 3, 0.333},
		{2.0 / 3.0, 2, 0.67},
		{0.4, 3, 0.4},
	}
	for _, tt := range tests {
		got, err := U.FloatRoundOffWithPrecision(tt.in, tt.precision)
		assert.Nil(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := U.FloatRoundOffWithPrecision(math.NaN(), 3)
	assert.NotNil(t, err)
	assert.Equal(t, 0.333, U.RoundOff(1.0/3.0))
}

func TestHashKeyUsingSha256Checksum(t *testing.T) {
	key := U.HashKeyUsingSha256Checksum("journeys")
	assert.Len(t, key, 64)
	assert.Equal(t, key, U.HashKeyUsingSha256Checksum("journeys"))
	assert.NotEqual(t, key, U.HashKeyUsingSha256Checksum("journeys2"))
}

func TestGetUUIDFromString(t *testing.T) {
	id := U.GetUUIDFromString("journey")
	assert.True(t, U.IsValidUUID(id))
	assert.Equal(t, id, U.GetUUIDFromString("journey"))
	assert.NotEqual(t, id, U.GetUUIDFromString("journey2"))
	assert.False(t, U.IsValidUUID("journey"))
}
