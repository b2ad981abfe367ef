//go:build gui

package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/metalagman/rfidscan"
	"github.com/spf13/cobra"
)

const windowTitle = "RFID Scan Simulator"

func newWindowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the scan form in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd.Context(), opts)
		},
	}
}

func runWindow(ctx context.Context, opts *rootOptions) error {
	a := app.New()
	w := a.NewWindow(windowTitle)

	form, err := opts.scanForm(windowPresenter{win: w})
	if err != nil {
		return err
	}

	rfidEntry := widget.NewEntry()
	deviceEntry := widget.NewEntry()

	// The handler runs on the UI thread and blocks it until the call returns.
	scan := widget.NewButton(rfidscan.ActionScan, func() {
		if _, err := form.Trigger(ctx, rfidEntry.Text, deviceEntry.Text); err != nil {
			opts.log.Error().Err(err).Msg("show outcome")
		}
	})

	w.SetContent(container.NewVBox(
		widget.NewLabel(rfidscan.LabelRFIDID),
		rfidEntry,
		widget.NewLabel(rfidscan.LabelDeviceID),
		deviceEntry,
		scan,
	))
	w.Resize(fyne.NewSize(360, 220))

	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	w.ShowAndRun()

	return nil
}

// windowPresenter shows outcomes as modal fyne dialogs.
type windowPresenter struct {
	win fyne.Window
}

func (p windowPresenter) Present(o rfidscan.Outcome) error {
	icon := theme.InfoIcon()

	switch o.Kind {
	case rfidscan.SeverityWarning:
		icon = theme.WarningIcon()
	case rfidscan.SeverityCritical:
		icon = theme.ErrorIcon()
	}

	msg := widget.NewLabel(o.Message)
	msg.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(nil, nil, widget.NewIcon(icon), nil, msg)
	dialog.ShowCustom(o.Title, "OK", content, p.win)

	return nil
}
