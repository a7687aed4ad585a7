package xferstat

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const headerLines = 2

func ParseLog(path string) (*ParsedLog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer file.Close()

	return ParseLogReader(path, file)
}

// parseFloatField saturates out-of-range values to ±Inf or 0 instead of failing.
func parseFloatField(field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return value, nil
	}

	return value, err
}

// splitRecord splits a single data line. A blank line yields no fields.
func splitRecord(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	csvReader := csv.NewReader(strings.NewReader(text))
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	return csvReader.Read()
}

func readHeaderParam(name string, reader *bufio.Reader, lineNo int) (float64, error) {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, errors.Wrapf(err, "could not read header of %s", name)
	}
	if err == io.EOF && line == "" {
		return 0, &FormatError{Path: name, Line: lineNo, Reason: "missing header line"}
	}

	text := strings.TrimSpace(line)
	param, err := parseFloatField(text)
	if err != nil {
		return 0, &FormatError{Path: name, Line: lineNo, Text: text, Reason: "header is not a number", Err: err}
	}

	return param, nil
}

func parseRecord(fields []string) (*LogRecord, string, error) {
	if len(fields) < 2 {
		return nil, "expected at least 2 fields", nil
	}

	x, err := parseFloatField(fields[0])
	if err != nil {
		return nil, "independent variable is not a number", err
	}
	// NaN never compares equal, so it could not be grouped
	if math.IsNaN(x) {
		return nil, "independent variable is NaN", nil
	}

	y, err := parseFloatField(fields[1])
	if err != nil {
		return nil, "dependent value is not a number", err
	}

	return &LogRecord{X: x, Y: y}, "", nil
}

// ParseLogReader reads the two header parameters and groups the remaining CSV
// rows by their first field. Parsing stops at the first malformed line,
// blank lines included.
func ParseLogReader(name string, r io.Reader) (*ParsedLog, error) {
	reader := bufio.NewReader(r)

	param1, err := readHeaderParam(name, reader, 1)
	if err != nil {
		return nil, err
	}
	param2, err := readHeaderParam(name, reader, 2)
	if err != nil {
		return nil, err
	}

	ret := &ParsedLog{
		Name:   name,
		Param1: param1,
		Param2: param2,
		Points: map[float64][]float64{},
	}

	for lineNo := headerLines + 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "could not read %s", name)
		}
		if line == "" && err == io.EOF {
			break
		}

		text := strings.TrimRight(line, "\r\n")
		fields, csvErr := splitRecord(text)
		if csvErr != nil {
			return nil, &FormatError{Path: name, Line: lineNo, Text: text, Reason: "malformed CSV", Err: csvErr}
		}

		record, reason, parseErr := parseRecord(fields)
		if reason != "" {
			return nil, &FormatError{Path: name, Line: lineNo, Text: text, Reason: reason, Err: parseErr}
		}

		ret.Points[record.X] = append(ret.Points[record.X], record.Y)

		if err == io.EOF {
			break
		}
	}

	logger.Debug().
		Str("log", name).
		Int("keys", len(ret.Points)).
		Int("samples", ret.NSamples()).
		Msg("parsed log")

	return ret, nil
}
