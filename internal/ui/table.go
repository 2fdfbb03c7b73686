package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/spacedata/internal/nasa"
)

// Grid renders headers and rows as a bordered table.
func Grid(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderCellStyle
			}
			return CellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// NEOTable renders near-earth object records as a grid.
func NEOTable(objects []nasa.NearEarthObject) string {
	headers := []string{"Name", "Close Approach Date", "Estimated Diameter (m)", "Velocity (km/h)", "Miss Distance (km)", "Hazardous"}

	rows := make([][]string, 0, len(objects))
	for _, o := range objects {
		rows = append(rows, []string{
			o.Name,
			o.CloseApproachDate,
			strconv.FormatFloat(o.EstDiameterMaxM, 'f', 1, 64),
			o.VelocityKmh,
			o.MissDistanceKm,
			strconv.FormatBool(o.Hazardous),
		})
	}
	return Grid(headers, rows)
}

// SmallBodyTable renders one small-body lookup as a two-column grid.
func SmallBodyTable(b *nasa.SmallBody) string {
	rows := [][]string{
		{"Name", b.FullName},
		{"Object Type", b.SpkID},
		{"Discovery Date", b.DiscoveryDate},
		{"Designation", b.Designation},
		{"Semi-major Axis", b.SemiMajorAxisAU + " AU"},
		{"Eccentricity", b.Eccentricity},
		{"Inclination", b.InclinationDeg + " degrees"},
		{"Diameter", b.DiameterKm + " km"},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return HeaderCellStyle
			}
			return CellStyle
		}).
		Rows(rows...)
	return t.Render()
}
