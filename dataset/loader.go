// Package dataset reads journeys from files and writes reports through a
// filestore.FileManager.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"mta/filestore"
	M "mta/model"
	U "mta/util"

	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Lines longer than this fail a jsonl decode.
const maxLineSize = 10 * 1024 * 1024

const idSeparator = "\x1f"

// FormatFromFileName picks the format from the file extension.
func FormatFromFileName(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported journeys file %q", fileName)
}

// DecodeJourneys reads every journey from r. A json document may be either an
// array of journeys or an object with a "journeys" array.
func DecodeJourneys(r io.Reader, format Format) ([]M.Journey, error) {
	var journeys []M.Journey
	var err error
	switch format {
	case FormatJSON:
		journeys, err = decodeJSON(r)
	case FormatJSONL:
		journeys, err = decodeJSONL(r)
	case FormatYAML:
		journeys, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("unsupported journeys format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return NormalizeJourneys(journeys), nil
}

type journeysDocument struct {
	Journeys []M.Journey `json:"journeys" yaml:"journeys"`
}

func decodeJSON(r io.Reader) ([]M.Journey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, E.Wrap(err, "failed to read journeys")
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var document journeysDocument
		if err := json.Unmarshal(data, &document); err != nil {
			return nil, E.Wrap(err, "failed to decode journeys document")
		}
		return document.Journeys, nil
	}
	var journeys []M.Journey
	if err := json.Unmarshal(data, &journeys); err != nil {
		return nil, E.Wrap(err, "failed to decode journeys")
	}
	return journeys, nil
}

func decodeJSONL(r io.Reader) ([]M.Journey, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	journeys := []M.Journey{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var journey M.Journey
		if err := json.Unmarshal(line, &journey); err != nil {
			return nil, E.Wrapf(err, "failed to decode journey on line %d", lineNum)
		}
		journeys = append(journeys, journey)
	}
	if err := scanner.Err(); err != nil {
		return nil, E.Wrap(err, "failed to scan journeys")
	}
	return journeys, nil
}

func decodeYAML(r io.Reader) ([]M.Journey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, E.Wrap(err, "failed to read journeys")
	}
	var journeys []M.Journey
	if err := yaml.Unmarshal(data, &journeys); err == nil {
		return journeys, nil
	}
	var document journeysDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, E.Wrap(err, "failed to decode yaml journeys")
	}
	return document.Journeys, nil
}

// NormalizeJourneys assigns an id to journeys without one and positions to
// journeys listing touchpoints in order without positions or timestamps. Other
// journeys are returned as given, so malformed ones stay malformed.
//
// Assigned ids are derived from the journey's index and content, so the same
// input always normalizes to the same journeys.
func NormalizeJourneys(journeys []M.Journey) []M.Journey {
	if journeys == nil {
		return []M.Journey{}
	}
	for i := range journeys {
		if journeys[i].ID == "" {
			journeys[i].ID = getJourneyID(i, journeys[i])
		}
		if positionsOmitted(journeys[i]) {
			for p := range journeys[i].Touchpoints {
				journeys[i].Touchpoints[p].Position = p
			}
		}
	}
	return journeys
}

func getJourneyID(index int, journey M.Journey) string {
	name := fmt.Sprintf("journey%s%d", idSeparator, index)
	// Journeys with an invalid value do not encode and are named by index alone.
	if data, err := json.Marshal(journey); err == nil {
		name = name + idSeparator + string(data)
	}
	return U.GetUUIDFromString(name)
}

func positionsOmitted(journey M.Journey) bool {
	if len(journey.Touchpoints) < 2 {
		return false
	}
	for _, tp := range journey.Touchpoints {
		if tp.Position != 0 || tp.HasTimestamp() {
			return false
		}
	}
	return true
}

// LoadJourneys reads and decodes a journeys file, the format following its extension.
func LoadJourneys(fm filestore.FileManager, dir, fileName string) ([]M.Journey, error) {
	logCtx := log.WithFields(log.Fields{"bucket": fm.GetBucketName(), "dir": dir, "file": fileName})

	format, err := FormatFromFileName(fileName)
	if err != nil {
		return nil, err
	}
	reader, err := fm.Get(dir, fileName)
	if err != nil {
		logCtx.WithError(err).Error("Failed to open journeys file.")
		return nil, E.Wrapf(err, "failed to open %s%s", dir, fileName)
	}
	defer reader.Close()

	journeys, err := DecodeJourneys(reader, format)
	if err != nil {
		logCtx.WithError(err).Error("Failed to decode journeys file.")
		return nil, err
	}
	logCtx.WithField("journeys", len(journeys)).Info("Loaded journeys.")
	return journeys, nil
}

// WriteReport stores v as indented json and returns the dir and file name used.
func WriteReport(fm filestore.FileManager, reportName string, v interface{}) (string, string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", "", E.Wrap(err, "failed to encode report")
	}
	dir, fileName := fm.GetReportsFilePathAndName(reportName, U.TimeNowUnix())
	if err := fm.Create(dir, fileName, bytes.NewReader(data)); err != nil {
		return "", "", E.Wrapf(err, "failed to write report %s%s", dir, fileName)
	}
	log.WithFields(log.Fields{"dir": dir, "file": fileName}).Info("Report written.")
	return dir, fileName, nil
}
