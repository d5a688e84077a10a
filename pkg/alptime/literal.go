package alptime

import (
	"strconv"
	"strings"
	"time"

	errUtils "github.com/cloudposse/alp/errors"
)

// Date literal prefixes accepted on the command line.
const (
	GregorianPrefix = "GRE:"
	AlpPrefix       = "ALP:"
)

const literalFields = 6

// ParseLiteral parses a date literal into an instant.
//
//	GRE:YYYY,MM,DD,HH,MM,SS                  Gregorian wall time in loc
//	ALP:alp,hexalp,qvalp,salp,talp,second    hexadecimal Alp digits since epoch
func ParseLiteral(literal string, epoch time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	trimmed := strings.TrimSpace(literal)
	prefix := strings.ToUpper(trimmed[:min(len(trimmed), len(GregorianPrefix))])

	switch prefix {
	case GregorianPrefix:
		return parseGregorian(literal, trimmed[len(GregorianPrefix):], loc)
	case AlpPrefix:
		d, err := parseAlp(literal, trimmed[len(AlpPrefix):])
		if err != nil {
			return time.Time{}, err
		}
		return d.Instant(epoch), nil
	default:
		return time.Time{}, invalidLiteral(literal, "unknown prefix")
	}
}

func parseGregorian(literal, body string, loc *time.Location) (time.Time, error) {
	fields, err := splitFields(literal, body, 10)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := int(fields[0]), time.Month(fields[1]), int(fields[2])
	hour, minute, sec := int(fields[3]), int(fields[4]), int(fields[5])
	t := time.Date(year, month, day, hour, minute, sec, 0, loc)

	// time.Date normalizes out-of-range fields; reject instead of rolling over.
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return time.Time{}, invalidLiteral(literal, "field out of range")
	}
	return t, nil
}

func parseAlp(literal, body string) (Duration, error) {
	fields, err := splitFields(literal, body, 16)
	if err != nil {
		return Duration{}, err
	}

	d, err := FromUnits(fields[0], int(fields[1]), int(fields[2]), int(fields[3]), int(fields[4]), int(fields[5]))
	if err != nil {
		return Duration{}, errUtils.Build(err).
			WithSentinel(errUtils.ErrInvalidDateLiteral).
			WithContext("literal", literal).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return d, nil
}

func splitFields(literal, body string, base int) ([]int64, error) {
	parts := strings.Split(body, ",")
	if len(parts) != literalFields {
		return nil, invalidLiteral(literal, "expected 6 comma-separated fields")
	}

	fields := make([]int64, 0, literalFields)
	for _, part := range parts {
		value, err := strconv.ParseInt(strings.TrimSpace(part), base, 64)
		if err != nil || value < 0 {
			return nil, invalidLiteral(literal, "field "+strconv.Quote(part)+" is not a valid number")
		}
		fields = append(fields, value)
	}
	return fields, nil
}

func invalidLiteral(literal, reason string) error {
	return errUtils.Build(errUtils.ErrInvalidDateLiteral).
		WithExplanation(reason).
		WithContext("literal", literal).
		WithHint("Use GRE:YYYY,MM,DD,HH,MM,SS or ALP:alp,hexalp,qvalp,salp,talp,second (hex)").
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}
