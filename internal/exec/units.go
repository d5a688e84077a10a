package exec

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/cloudposse/alp/pkg/alptime"
)

var (
	unitHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	unitCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// UnitRows returns one row per Alp unit: name, place value in seconds and radix.
func UnitRows() [][]string {
	return lo.Map(alptime.Units, func(u alptime.Unit, _ int) []string {
		radix := "-"
		if u.Radix > 0 {
			radix = strconv.Itoa(u.Radix)
		}
		return []string{
			u.Name,
			fmt.Sprintf("2^%d = %d", bits.TrailingZeros64(uint64(u.PlaceValue)), u.PlaceValue),
			radix,
		}
	})
}

// PrintUnits writes the unit table to w.
func PrintUnits(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("UNIT", "SECONDS", "RADIX").
		Rows(UnitRows()...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return unitHeaderStyle
			}
			return unitCellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
