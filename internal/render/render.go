// Package render draws hardware snapshots as text for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/CristiGvl/picoSysMon/internal/battery"
	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/CristiGvl/picoSysMon/internal/temps"
	"github.com/charmbracelet/lipgloss"
)

const offlineText = "Sleeping / Offline"

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true).MarginTop(1)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	thermalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB74D"))

	heatStyles = map[battery.Heat]lipgloss.Style{
		battery.HeatCool: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		battery.HeatWarm: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB74D")),
		battery.HeatHot:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252")),
	}
)

// CoreLine formats one core.
func CoreLine(c cpu.CoreFrequency) string {
	label := fmt.Sprintf("Core %d :  ", c.Index)
	if c.State != cpu.CoreActive {
		return label + offlineStyle.Render(offlineText)
	}
	return label + activeStyle.Render(fmt.Sprintf("%d MHz", c.MHz()))
}

// ZoneLine formats one thermal zone.
func ZoneLine(z temps.Zone) string {
	return thermalStyle.Render(fmt.Sprintf("%s: %.1f°C", z.Label, z.Temperature))
}

// Hardware renders the cores and thermal zones screen.
func Hardware(snap hardware.Snapshot) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("CPU CORES FREQUENCY"))
	b.WriteByte('\n')
	for _, c := range snap.Cores {
		b.WriteString(CoreLine(c))
		b.WriteByte('\n')
	}

	b.WriteString(headerStyle.Render("THERMAL ZONES"))
	b.WriteByte('\n')
	if snap.Thermal.NoSensors {
		b.WriteString(offlineStyle.Render(temps.NoSensorsMessage))
		b.WriteByte('\n')
		return b.String()
	}
	for _, z := range snap.Thermal.Zones {
		b.WriteString(ZoneLine(z))
		b.WriteByte('\n')
	}

	return b.String()
}

// Battery renders the battery line, coloured by heat.
func Battery(info *battery.Info) string {
	if info == nil || !info.Present {
		return "Battery: not present"
	}
	if info.Temperature == nil {
		return fmt.Sprintf("Battery: %d%%", info.Level)
	}
	temp := heatStyles[info.Heat].Render(fmt.Sprintf("%.1f°C", *info.Temperature))
	return fmt.Sprintf("Battery: %d%%  %s", info.Level, temp)
}
