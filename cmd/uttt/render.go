package main

import (
	"io"
	"strings"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/muesli/termenv"
)

type renderer struct {
	out *termenv.Output
}

// Colours follow the terminal's profile, 'color' false forces plain ASCII
func newRenderer(w io.Writer, color bool) *renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *renderer) cell(b uttt.Board, or, oc, ir, ic int) string {
	piece := b.Cell(or, oc, ir, ic)
	style := r.out.String(string(piece.Rune()))

	switch piece {
	case uttt.PieceCross:
		style = style.Foreground(termenv.ANSIRed)
	case uttt.PieceCircle:
		style = style.Foreground(termenv.ANSIBlue)
	}
	if b.Meta(or, oc) != uttt.PositionUnResolved {
		style = style.Faint()
	}
	if last, ok := b.LastMove(); ok && last == uttt.NewMove(or, oc, ir, ic) {
		style = style.Bold()
	}
	return style.String()
}

// Board as rows of sub-boards separated by '|', with a rule every three rows
func (r *renderer) Render(b uttt.Board) string {
	var sb strings.Builder
	for or := 0; or < 3; or++ {
		for ir := 0; ir < 3; ir++ {
			for oc := 0; oc < 3; oc++ {
				sb.WriteByte('|')
				for ic := 0; ic < 3; ic++ {
					sb.WriteByte(' ')
					sb.WriteString(r.cell(b, or, oc, ir, ic))
				}
			}
			sb.WriteString("|\n")
		}
		sb.WriteString(strings.Repeat("-", 22))
		sb.WriteByte('\n')
	}
	return sb.String()
}
