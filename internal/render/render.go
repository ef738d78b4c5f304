/*
SPDX-License-Identifier: GPL-3.0-or-later

Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com

This file is part of Pulse.

Pulse is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Pulse is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Pulse. If not, see https://www.gnu.org/licenses/.
*/

// pulse/internal/render/render.go
// Package render draws the dashboard. It only formats data that was
// already collected and ranked; it makes no decisions.

package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/devpospicha/pulse/internal/model"
)

const boxWidth = 78

// Renderer writes the dashboard to Out. Styled enables ANSI colors.
type Renderer struct {
	Out    io.Writer
	Styled bool
}

func New(out io.Writer, styled bool) *Renderer {
	return &Renderer{Out: out, Styled: styled}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.Styled {
		return text
	}
	return s.Render(text)
}

// Render writes every section for snap followed by the ranked processes.
func (r *Renderer) Render(snap *model.Snapshot, top []model.ProcessInfo) {
	r.banner()
	r.system(snap.Host)
	r.cpu(snap.CPUs, snap.GlobalCPU)
	r.memory(snap.Memory)
	r.disks(snap.Disks)
	r.network(snap.Networks)
	r.temperature(snap.Sensors)
	r.processes(top)
}

func (r *Renderer) banner() {
	fmt.Fprintln(r.Out)
	for i, line := range bannerLines {
		color := lipgloss.Color(bannerGradient[i%len(bannerGradient)])
		fmt.Fprintln(r.Out, r.style(lipgloss.NewStyle().Bold(true).Foreground(color), line))
	}
	fmt.Fprintln(r.Out, r.style(titleStyle, "              System Monitor"))
	fmt.Fprintln(r.Out)
}

func (r *Renderer) hr(title string) {
	label := " " + title + " "
	pad := boxWidth - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(r.Out, "\n┌%s%s┐\n", r.style(headerStyle, label), strings.Repeat("─", pad))
}

func (r *Renderer) footer() {
	fmt.Fprintf(r.Out, "└%s┘\n", strings.Repeat("─", boxWidth))
}

func (r *Renderer) system(h model.HostInfo) {
	r.hr("SYSTEM")
	fmt.Fprintf(r.Out, "│ Host        │ %s │\n", Truncate(orUnknown(h.Hostname), 55))
	fmt.Fprintf(r.Out, "│ OS          │ %s │\n", Truncate(orUnknown(h.OSVersion), 55))
	fmt.Fprintf(r.Out, "│ Kernel      │ %s │\n", Truncate(orUnknown(h.KernelVersion), 55))
	fmt.Fprintf(r.Out, "│ Uptime      │ %s │\n", Truncate(fmt.Sprintf("%d seconds", h.UptimeSeconds), 55))
	r.footer()
}

func (r *Renderer) cpu(cores []model.CPUUsage, global float64) {
	r.hr("CPU")
	fmt.Fprintf(r.Out, "│ %-8s │ %-52s │\n", "Core", "Usage")
	fmt.Fprintln(r.Out, "├──────────┼────────────────────────────────────────────────────┤")
	for _, c := range cores {
		fmt.Fprintf(r.Out, "│ %-8s │ %s │\n", c.Name, Truncate(Meter(c.UsagePercent, 30), 52))
	}
	fmt.Fprintf(r.Out, "│ %-8s │ %s │\n", "TOTAL", Truncate(Meter(global, 30), 52))
	r.footer()
}

func (r *Renderer) memory(m model.MemoryInfo) {
	r.hr("MEMORY")
	fmt.Fprintf(r.Out, "│ Total      │ %10.2f GB │\n", gib(m.TotalBytes))
	fmt.Fprintf(r.Out, "│ Used       │ %10.2f GB │\n", gib(m.UsedBytes))
	fmt.Fprintf(r.Out, "│ Available  │ %10.2f GB │\n", gib(m.AvailableBytes))
	fmt.Fprintf(r.Out, "│ Swap Used  │ %10.2f GB │\n", gib(m.SwapUsedBytes))
	r.footer()
}

func (r *Renderer) disks(disks []model.Disk) {
	r.hr("DISKS")
	fmt.Fprintf(r.Out, "│ %-12s │ %-12s │ %8s │ %8s │\n", "Name", "Mount", "Total", "Free")
	fmt.Fprintln(r.Out, "├──────────────┼──────────────┼──────────┼──────────┤")
	for _, d := range disks {
		fmt.Fprintf(r.Out, "│ %s │ %s │ %6dGB │ %6dGB │\n",
			Truncate(d.Name, 12), Truncate(d.MountPoint, 12),
			d.TotalBytes/bytesPerGiB, d.AvailableBytes/bytesPerGiB)
	}
	r.footer()
}

func (r *Renderer) network(nets map[string]model.NetworkIO) {
	r.hr("NETWORK")
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		n := nets[name]
		fmt.Fprintf(r.Out, "│ %s RX %6d MB │ TX %6d MB │\n",
			Truncate(name, 10), n.ReceivedBytes/bytesPerMiB, n.TransmittedBytes/bytesPerMiB)
	}
	r.footer()
}

func (r *Renderer) temperature(sensors []model.Sensor) {
	r.hr("TEMPERATURE")
	if len(sensors) == 0 {
		fmt.Fprintln(r.Out, "│ No temperature sensors available on this system │")
		r.footer()
		return
	}
	fmt.Fprintf(r.Out, "│ %-28s │ %6s │ %6s │ %-6s │\n", "Sensor", "Temp", "Max", "State")
	fmt.Fprintln(r.Out, "├──────────────────────────────┼────────┼────────┼────────┤")
	for _, s := range sensors {
		status := TempStatus(s.TemperatureC)
		fmt.Fprintf(r.Out, "│ %s │ %s │ %s │ %s │\n",
			Truncate(s.Label, 28), FormatTemp(s.TemperatureC), FormatTemp(s.MaxC),
			r.style(statusStyle(status), fmt.Sprintf("%-6s", status)))
	}
	r.footer()
}

func (r *Renderer) processes(top []model.ProcessInfo) {
	r.hr("TOP PROCESSES (CPU)")
	fmt.Fprintf(r.Out, "│ %7s │ %-28s │ %7s │ %7s │\n", "PID", "Process", "CPU%", "MEM")
	fmt.Fprintln(r.Out, "├─────────┼──────────────────────────────┼─────────┼─────────┤")
	for _, p := range top {
		fmt.Fprintf(r.Out, "│ %7d │ %s │ %6.1f%% │ %6dMB │\n", p.PID, Truncate(p.Name, 28), p.CPU, p.MemoryMB)
	}
	r.footer()
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "OK":
		return okStyle
	case "WARM":
		return warmStyle
	case "HOT":
		return hotStyle
	default:
		return dimStyle
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
