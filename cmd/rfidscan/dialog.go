package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/metalagman/rfidscan"
)

// terminalPresenter prints each outcome as a boxed dialog.
type terminalPresenter struct {
	w io.Writer
}

var severityStyles = map[rfidscan.Severity]color.Style{
	rfidscan.SeverityInformation: color.New(color.FgGreen, color.OpBold),
	rfidscan.SeverityWarning:     color.New(color.FgYellow, color.OpBold),
	rfidscan.SeverityCritical:    color.New(color.FgRed, color.OpBold),
}

func (p terminalPresenter) Present(o rfidscan.Outcome) error {
	style, ok := severityStyles[o.Kind]
	if !ok {
		style = color.New(color.OpBold)
	}

	header := style.Sprintf("[%s] %s", o.Kind, o.Title)
	if _, err := fmt.Fprintf(p.w, "\n%s\n  %s\n\n", header, o.Message); err != nil {
		return fmt.Errorf("write dialog: %w", err)
	}

	return nil
}
