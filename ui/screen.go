// Package ui composes terminal frames for the player: it positions the
// animation inside the viewport, paints draw batches with truecolor escapes
// and keeps a status line at the bottom row.
package ui

import (
	"fmt"
	"strings"

	"flick/cframe"
	"flick/conf"
	"flick/render"
)

// cellSizing maps one character cell to one pixel unit so that batch
// positions come out as terminal columns and rows directly.
var cellSizing = render.FontSizing{
	CharWidthRatio:  1,
	LineHeightRatio: 1,
	MinFontSize:     1,
	MaxFontSize:     1,
	Padding:         0,
}

// CellConfig returns the render config used for terminal output.
func CellConfig() render.Config {
	return render.Config{FontSize: 1, Sizing: cellSizing}
}

// Screen describes the viewport a frame is composed for.
type Screen struct {
	Cols   int
	Rows   int
	Colors conf.FrameColors
}

// statusRows is the number of viewport rows reserved for the status line.
const statusRows = 1

// ComposeColorFrame renders the batched color frame centered in the viewport.
// Only the batch list is drawn; skipped cells stay at the background color.
func (s Screen) ComposeColorFrame(result render.Result, status string) string {
	var sb strings.Builder
	writeFramePrefix(&sb, s.Colors.Background)

	offRow, offCol := s.centerOffsets(int(result.Width), int(result.Height))
	var last render.RGB
	first := true
	for _, b := range result.Batches {
		row := offRow + int(b.Y)
		col := offCol + int(b.X)
		if row < 0 || row >= s.Rows-statusRows || col < 0 {
			continue
		}
		text := b.Text
		if col+len(text) > s.Cols {
			if col >= s.Cols {
				continue
			}
			text = text[:s.Cols-col]
		}
		sb.WriteString(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1))
		if first || b.Color != last {
			sb.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", b.Color.R, b.Color.G, b.Color.B))
			last = b.Color
			first = false
		}
		sb.WriteString(text)
	}

	s.writeStatus(&sb, status)
	return sb.String()
}

// ComposeTextFrame renders a text-only frame centered in the viewport using
// the configured foreground color.
func (s Screen) ComposeTextFrame(frame cframe.Frame, status string) string {
	var sb strings.Builder
	writeFramePrefix(&sb, s.Colors.Background)

	cols, rows := frame.Dimensions()
	offRow, offCol := s.centerOffsets(cols, rows)
	fg := s.Colors.Foreground
	sb.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", fg.R, fg.G, fg.B))

	row := 0
	for line := range strings.Lines(frame.Content) {
		line = strings.TrimRight(line, "\n")
		target := offRow + row
		row++
		if target < 0 || target >= s.Rows-statusRows || line == "" {
			continue
		}
		col := offCol
		runes := []rune(line)
		if col+len(runes) > s.Cols {
			if col >= s.Cols {
				continue
			}
			line = string(runes[:s.Cols-col])
		}
		sb.WriteString(fmt.Sprintf("\x1b[%d;%dH", target+1, col+1))
		sb.WriteString(line)
	}

	s.writeStatus(&sb, status)
	return sb.String()
}

// ComposeStatusScreen renders a viewport that carries only a centered message,
// used before playback starts and for fatal load errors.
func (s Screen) ComposeStatusScreen(message string) string {
	var sb strings.Builder
	writeFramePrefix(&sb, s.Colors.Background)

	fg := s.Colors.Foreground
	sb.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", fg.R, fg.G, fg.B))
	lines := strings.Split(message, "\n")
	startRow := max((s.Rows-len(lines))/2, 0)
	for i, line := range lines {
		if startRow+i >= s.Rows {
			break
		}
		col := max((s.Cols-len(line))/2, 0)
		sb.WriteString(fmt.Sprintf("\x1b[%d;%dH", startRow+i+1, col+1))
		sb.WriteString(line)
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}

// centerOffsets returns the top-left cell of a frame centered in the part of
// the viewport above the status line. Offsets may go negative for frames
// larger than the viewport; callers clip per row.
func (s Screen) centerOffsets(cols, rows int) (offRow, offCol int) {
	return (s.Rows - statusRows - rows) / 2, (s.Cols - cols) / 2
}

func (s Screen) writeStatus(sb *strings.Builder, status string) {
	if status == "" {
		sb.WriteString("\x1b[0m")
		return
	}
	if len(status) > s.Cols {
		status = status[:s.Cols]
	}
	sb.WriteString(fmt.Sprintf("\x1b[0m\x1b[2m\x1b[%d;1H%s\x1b[0m", s.Rows, status))
}

// writeFramePrefix clears the viewport to the background color before any
// cells are drawn.
func writeFramePrefix(sb *strings.Builder, bg render.RGB) {
	sb.WriteString(fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[2J\x1b[H", bg.R, bg.G, bg.B))
}

// StatusLine formats the bottom status row from playback and loading state.
func StatusLine(current, total int, playing string, colorMsg string, hasColor, colorOn bool) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d/%d", current+1, total))
	parts = append(parts, playing)
	if colorMsg != "" {
		parts = append(parts, colorMsg)
	}
	if hasColor && !colorOn {
		parts = append(parts, "mono")
	}
	return strings.Join(parts, "  ")
}
