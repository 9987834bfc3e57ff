package util

import (
	"crypto/sha256"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func HashKeyUsingSha256Checksum(data string) string {
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)
}

// GetUUIDFromString returns a name based uuid, the same one for the same name.
func GetUUIDFromString(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func FloatRoundOffWithPrecision(value float64, precision int) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value, fmt.Errorf("cannot round off %v", value)
	}
	valueString := fmt.Sprintf("%0.*f", precision, value)
	roundOffValue, err := strconv.ParseFloat(valueString, 64)
	if err != nil {
		log.WithFields(log.Fields{"value": value,
			"precision": precision}).Error("error while rounding off float value")
		return roundOffValue, err
	}
	return roundOffValue, nil
}

// RoundOff rounds to DefaultPrecision and returns the value untouched when it
// cannot be rounded.
func RoundOff(value float64) float64 {
	rounded, err := FloatRoundOffWithPrecision(value, DefaultPrecision)
	if err != nil {
		return value
	}
	return rounded
}

// TimeNowUnix returns the current unix timestamp in seconds.
func TimeNowUnix() int64 {
	return time.Now().UTC().Unix()
}

// SplitAndTrim splits a comma separated list and drops empty items.
func SplitAndTrim(value, separator string) []string {
	parts := strings.Split(value, separator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return AppendNonNullValues(parts...)
}

// TimeSince returns the elapsed milliseconds since start, as recorded by metrics.
func TimeSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
