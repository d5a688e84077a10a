// Package alptime converts Gregorian instants into the Alp unit system.
//
// One alp is 2^18 seconds. Inside an alp the remaining seconds form an
// 18-bit mixed-radix number with digit widths 4, 2, 4, 4, 4 bits:
//
//	hexalp (2^14) | qvalp (2^12) | salp (2^8) | talp (2^4) | second (2^0)
package alptime

import (
	"fmt"

	errUtils "github.com/cloudposse/alp/errors"
)

// Place values in seconds.
const (
	SecondsPerAlp    int64 = 1 << 18
	SecondsPerHexalp int64 = 1 << 14
	SecondsPerQvalp  int64 = 1 << 12
	SecondsPerSalp   int64 = 1 << 8
	SecondsPerTalp   int64 = 1 << 4
	SecondsPerSecond int64 = 1
)

// MaxSecondsSinceEpoch bounds every Duration so that adding it to an epoch's
// Unix time cannot overflow. MaxAlp is the largest alp count below it.
const (
	MaxSecondsSinceEpoch int64 = 1<<62 - 1
	MaxAlp                     = MaxSecondsSinceEpoch / SecondsPerAlp
)

// Radices of the sub-units.
const (
	HexalpRadix = 16
	QvalpRadix  = 4
	SalpRadix   = 16
	TalpRadix   = 16
	SecondRadix = 16
)

// Unit names as exposed to templates.
const (
	UnitAlp               = "alp"
	UnitHexalp            = "hexalp"
	UnitQvalp             = "qvalp"
	UnitSalp              = "salp"
	UnitTalp              = "talp"
	UnitSecond            = "second"
	UnitSeconds           = "seconds"
	UnitSecondsSinceEpoch = "seconds_since_epoch"
)

// Unit describes one digit of the Alp representation.
type Unit struct {
	Name       string
	PlaceValue int64
	// Radix is 0 for the unbounded alp count.
	Radix int
}

// Units lists the Alp units from largest to smallest.
var Units = []Unit{
	{Name: UnitAlp, PlaceValue: SecondsPerAlp},
	{Name: UnitHexalp, PlaceValue: SecondsPerHexalp, Radix: HexalpRadix},
	{Name: UnitQvalp, PlaceValue: SecondsPerQvalp, Radix: QvalpRadix},
	{Name: UnitSalp, PlaceValue: SecondsPerSalp, Radix: SalpRadix},
	{Name: UnitTalp, PlaceValue: SecondsPerTalp, Radix: TalpRadix},
	{Name: UnitSecond, PlaceValue: SecondsPerSecond, Radix: SecondRadix},
}

// Duration is an immutable snapshot of the time elapsed since the epoch,
// expressed in Alp units.
type Duration struct {
	SecondsSinceEpoch int64
	Alp               int64
	// Seconds is the number of seconds into the current alp.
	Seconds int
	Hexalp  int
	Qvalp   int
	Salp    int
	Talp    int
	Second  int
}

// Decompose splits a non-negative second count into Alp units.
func Decompose(secondsSinceEpoch int64) (Duration, error) {
	if secondsSinceEpoch < 0 {
		return Duration{}, errUtils.Build(errUtils.ErrBeforeEpoch).
			WithContext("seconds_since_epoch", secondsSinceEpoch).
			WithHint("Pick an instant after the epoch or move the epoch back").
			WithTitle(beforeEpochTitle).
			Err()
	}
	if secondsSinceEpoch > MaxSecondsSinceEpoch {
		return Duration{}, tooFarPastEpoch(secondsSinceEpoch)
	}

	left := secondsSinceEpoch % SecondsPerAlp
	d := Duration{
		SecondsSinceEpoch: secondsSinceEpoch,
		Alp:               secondsSinceEpoch / SecondsPerAlp,
		Seconds:           int(left),
	}

	d.Hexalp = int(left / SecondsPerHexalp)
	left -= int64(d.Hexalp) * SecondsPerHexalp
	d.Qvalp = int(left / SecondsPerQvalp)
	left -= int64(d.Qvalp) * SecondsPerQvalp
	d.Salp = int(left / SecondsPerSalp)
	left -= int64(d.Salp) * SecondsPerSalp
	d.Talp = int(left / SecondsPerTalp)
	left -= int64(d.Talp) * SecondsPerTalp
	d.Second = int(left)

	return d, nil
}

// FromUnits builds a Duration from its digits, checking each sub-unit
// against its radix.
func FromUnits(alp int64, hexalp, qvalp, salp, talp, second int) (Duration, error) {
	if alp < 0 || alp > MaxAlp {
		return Duration{}, outOfRange(UnitAlp, alp)
	}
	digits := []struct {
		unit  Unit
		value int
	}{
		{Units[1], hexalp},
		{Units[2], qvalp},
		{Units[3], salp},
		{Units[4], talp},
		{Units[5], second},
	}

	total := alp * SecondsPerAlp
	for _, digit := range digits {
		if digit.value < 0 || digit.value >= digit.unit.Radix {
			return Duration{}, outOfRange(digit.unit.Name, int64(digit.value))
		}
		total += int64(digit.value) * digit.unit.PlaceValue
	}

	return Decompose(total)
}

// beforeEpochTitle heads the formatted ErrBeforeEpoch message.
const beforeEpochTitle = "Before epoch"

func tooFarPastEpoch(seconds interface{}) error {
	return errUtils.Build(errUtils.ErrTimeOutOfRange).
		WithContext("seconds_since_epoch", seconds).
		WithHintf("Alp time is limited to %d seconds past the epoch", MaxSecondsSinceEpoch).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

func outOfRange(unit string, value int64) error {
	return errUtils.Build(errUtils.ErrUnitOutOfRange).
		WithExplanationf("%s=%d", unit, value).
		WithContext("unit", unit).
		Err()
}

// Values exposes the fields by name for template rendering.
func (d Duration) Values() map[string]int64 {
	return map[string]int64{
		UnitAlp:               d.Alp,
		UnitHexalp:            int64(d.Hexalp),
		UnitQvalp:             int64(d.Qvalp),
		UnitSalp:              int64(d.Salp),
		UnitTalp:              int64(d.Talp),
		UnitSecond:            int64(d.Second),
		UnitSeconds:           int64(d.Seconds),
		UnitSecondsSinceEpoch: d.SecondsSinceEpoch,
	}
}

// Total recombines the digits into a second count.
func (d Duration) Total() int64 {
	return d.Alp*SecondsPerAlp +
		int64(d.Hexalp)*SecondsPerHexalp +
		int64(d.Qvalp)*SecondsPerQvalp +
		int64(d.Salp)*SecondsPerSalp +
		int64(d.Talp)*SecondsPerTalp +
		int64(d.Second)
}

func (d Duration) String() string {
	return fmt.Sprintf("AlpTime{%d alp, %d hexalp, %d qvalp, %d salp, %d talp, %d second}",
		d.Alp, d.Hexalp, d.Qvalp, d.Salp, d.Talp, d.Second)
}
