package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pyrafetch/pyrafetch/internal/bar"
	"github.com/pyrafetch/pyrafetch/internal/config"
	"github.com/pyrafetch/pyrafetch/internal/overlay"
	"github.com/pyrafetch/pyrafetch/internal/sysinfo"
)

// BuildLines turns a snapshot into the pyramid rows, top to bottom. Metrics
// missing from the snapshot produce no row.
func BuildLines(snap sysinfo.Snapshot, settings *config.Settings, st Styles) ([]bar.Line, error) {
	ramps, err := settings.Ramps()
	if err != nil {
		return nil, err
	}
	ramMode, memoryMode, err := settings.Modes()
	if err != nil {
		return nil, err
	}

	var lines []bar.Line
	add := func(name string, l bar.Line, err error) error {
		if err != nil {
			return fmt.Errorf("%s bar: %w", name, err)
		}
		lines = append(lines, l)
		return nil
	}

	if snap.CPUs > 0 {
		l, err := bar.NewLine(ramps.CPU, nil, overlay.NewAlwaysLeft(), 0,
			bar.WithLabel(cpuLabel(snap.CPUs)),
			bar.WithTrailer(st.CPU.Render("logical cpu cores")),
		)
		if err := add("cpu", l, err); err != nil {
			return nil, err
		}
	}

	if m := snap.Memory; m != nil {
		avail := m.AvailFraction()
		human := settings.Layout.HumanizeMemory
		var underline bar.Option = func(l *bar.Line) { l.Underline = settings.Layout.UnderlineMemory }

		total := formatMemory(m.TotalKB, human, st.Total, st.Unit)
		used := st.Used.Render(fmt.Sprintf("%.1f%%", 100-avail*100))
		l, err := bar.NewLine(ramps.RAMUsed, ramps.RAMFree, ramMode, min(2-2*avail, 1),
			underline,
			bar.WithLabelText("ram/"),
			bar.WithTrailer(fmt.Sprintf("total: %s (%s used)", total, used)),
		)
		if err := add("ram", l, err); err != nil {
			return nil, err
		}

		free := formatMemory(m.AvailKB, human, st.Free, st.Unit)
		freePct := st.Free.Render(fmt.Sprintf("%.1f%%", avail*100))
		l, err = bar.NewLine(ramps.RAMUsed, ramps.RAMFree, memoryMode, 1-min(avail*2, 1),
			underline,
			bar.WithLabelText("memory"),
			bar.WithTrailer(fmt.Sprintf("free: %s (%s)", free, freePct)),
		)
		if err := add("memory", l, err); err != nil {
			return nil, err
		}
	}

	if o := snap.OS; o != nil {
		trailer := fmt.Sprintf("%s %s %s",
			st.Hostname.Render(o.Hostname), st.Separator.Render("@"), st.Release.Render(o.Release))
		l, err := bar.NewLine(ramps.OS, nil, overlay.NewAlwaysLeft(), 0,
			bar.WithLabelText(o.Type),
			bar.WithTrailer(trailer),
		)
		if err := add("os", l, err); err != nil {
			return nil, err
		}
	}

	return lines, nil
}

// cpuLabel returns exactly two glyphs: the first two digits of n, blank padded
func cpuLabel(n int) []string {
	label := []string{" ", " "}
	for i, g := range bar.Glyphs(strconv.Itoa(n)) {
		if i >= len(label) {
			break
		}
		label[i] = g
	}
	return label
}

// formatMemory renders a KiB amount as "<n.n>gb", or in humanized IEC units
func formatMemory(kb uint64, human bool, value, unit lipgloss.Style) string {
	if human {
		return value.Render(humanize.IBytes(kb * 1024))
	}
	return value.Render(fmt.Sprintf("%.1f", float64(kb)/1024/1024)) + unit.Render("gb")
}
