package ui

import (
	"ZenTime/control"
	"ZenTime/i18n"
	"ZenTime/stopwatch"
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type App interface {
	Stopwatch() *stopwatch.Stopwatch
	Config() stopwatch.Config
	EnqueueCommand(cmd control.Command)
	UpdateControlButtonState()
	HandleKeyRune(rune)
	ShowInfoDialog(title string, minSize fyne.Size)
	SetControls(*Controls)
	SetDisplay(*StopwatchWidget)
}

var (
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	mutedColor = color.NRGBA{R: 0x73, G: 0x73, B: 0x73, A: 0xff}
	dimColor   = color.NRGBA{R: 0x52, G: 0x52, B: 0x52, A: 0xff}
)

// Send posts a command and waits briefly for the command loop to handle it
// before refreshing the control buttons.
func Send(a App, t control.CommandType) {
	reply := make(chan bool, 1)
	a.EnqueueCommand(control.Command{Type: t, Reply: reply})
	select {
	case <-reply:
	case <-time.After(200 * time.Millisecond):
	}
	a.UpdateControlButtonState()
}

// ControlsFor lists the commands offered in a status, left to right.
func ControlsFor(s stopwatch.Status) []control.CommandType {
	switch s {
	case stopwatch.StatusRunning:
		return []control.CommandType{control.CmdLap, control.CmdPause}
	case stopwatch.StatusPaused:
		return []control.CommandType{control.CmdReset, control.CmdResume}
	}
	return []control.CommandType{control.CmdStart}
}

// displayText returns the main clock (hours only once an hour has passed)
// and the hundredths shown below it.
func displayText(ms int64) (string, string) {
	e := stopwatch.FormatElapsed(ms)
	if e.HasHours() {
		return fmt.Sprintf("%s:%s:%s", e.Hours, e.Minutes, e.Seconds), e.Milliseconds
	}
	return fmt.Sprintf("%s:%s", e.Minutes, e.Seconds), e.Milliseconds
}

type highlight int

const (
	highlightNone highlight = iota
	highlightFastest
	highlightSlowest
)

type lapRow struct {
	Label     string
	Split     string
	Total     string
	Highlight highlight
}

func lapRows(laps []stopwatch.Lap) []lapRow {
	fastest, slowest, ranked := stopwatch.RankLaps(laps)
	rows := make([]lapRow, 0, len(laps))
	for _, l := range laps {
		row := lapRow{
			Label: stopwatch.LapLabel(l.ID),
			Split: stopwatch.FormatElapsed(l.SplitMs).Clock(),
			Total: stopwatch.FormatElapsed(l.CumulativeMs).Clock(),
		}
		if ranked && l.ID == fastest.ID {
			row.Highlight = highlightFastest
		}
		if ranked && l.ID == slowest.ID {
			row.Highlight = highlightSlowest
		}
		rows = append(rows, row)
	}
	return rows
}

func recordedText(n int) string {
	return fmt.Sprintf(i18n.T("%d recorded"), n)
}

// StopwatchWidget renders the elapsed time and the lap list.
type StopwatchWidget struct {
	sw *stopwatch.Stopwatch

	mainText   *canvas.Text
	millisText *canvas.Text
	countText  *canvas.Text
	lapList    *fyne.Container
	lapPanel   *fyne.Container
	display    *TappableContainer

	shownLaps int // touched only inside fyne.Do
	stopped   atomic.Bool
}

func NewStopwatchWidget(a App) *StopwatchWidget {
	w := &StopwatchWidget{sw: a.Stopwatch()}

	w.mainText = canvas.NewText("00:00", textColor)
	w.mainText.TextStyle.Monospace = true
	w.mainText.TextSize = stopwatch.FontSizeDisplay
	w.mainText.Alignment = fyne.TextAlignCenter

	w.millisText = canvas.NewText("00", mutedColor)
	w.millisText.TextStyle.Monospace = true
	w.millisText.TextSize = stopwatch.FontSizeMillis
	w.millisText.Alignment = fyne.TextAlignCenter

	w.display = NewTappableContainer(container.NewVBox(w.mainText, w.millisText), func() {
		a.HandleKeyRune(' ')
	}, func(*fyne.PointEvent) {
		a.HandleKeyRune('l')
	})

	title := canvas.NewText(i18n.T("Laps"), mutedColor)
	title.TextStyle.Bold = true
	title.TextSize = stopwatch.FontSizeLapMeta
	w.countText = canvas.NewText("", dimColor)
	w.countText.TextStyle.Monospace = true
	w.countText.TextSize = stopwatch.FontSizeLapMeta

	w.lapList = container.NewVBox()
	scroll := container.NewVScroll(w.lapList)
	scroll.SetMinSize(fyne.NewSize(0, stopwatch.LapListHeight))

	background := canvas.NewRectangle(color.NRGBA{R: 0x17, G: 0x17, B: 0x17, A: 0x66})
	background.CornerRadius = stopwatch.CornerRadius
	header := container.NewBorder(nil, widget.NewSeparator(), title, w.countText)
	w.lapPanel = container.NewStack(background, container.NewPadded(container.NewBorder(header, nil, nil, nil, scroll)))
	w.lapPanel.Hide()

	w.sw.SetUI(w)
	w.UpdateDisplay()
	return w
}

// Display returns the tappable elapsed-time area.
func (w *StopwatchWidget) Display() fyne.CanvasObject {
	return w.display
}

// LapPanel returns the lap list, hidden while no lap is recorded.
func (w *StopwatchWidget) LapPanel() fyne.CanvasObject {
	return w.lapPanel
}

func (w *StopwatchWidget) UpdateDisplay() {
	if w.stopped.Load() {
		return
	}
	s := w.sw.Snapshot()
	fyne.Do(func() {
		w.render(s)
	})
}

// Stop detaches the widget from the stopwatch. Renders already queued with
// fyne.Do become no-ops.
func (w *StopwatchWidget) Stop() {
	w.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (w *StopwatchWidget) Stopped() bool {
	return w.stopped.Load()
}

func (w *StopwatchWidget) render(s stopwatch.Snapshot) {
	if w.stopped.Load() {
		return
	}
	mainStr, millisStr := displayText(s.ElapsedMs)
	w.mainText.Text = mainStr
	w.millisText.Text = millisStr
	w.mainText.Refresh()
	w.millisText.Refresh()

	if len(s.Laps) != w.shownLaps {
		w.renderLaps(s.Laps)
	}
}

func (w *StopwatchWidget) renderLaps(laps []stopwatch.Lap) {
	w.shownLaps = len(laps)
	w.lapList.RemoveAll()
	if len(laps) == 0 {
		w.lapPanel.Hide()
		return
	}

	for i, row := range lapRows(laps) {
		if i > 0 {
			w.lapList.Add(widget.NewSeparator())
		}
		w.lapList.Add(newLapRowObject(row))
	}
	w.countText.Text = recordedText(len(laps))
	w.countText.Refresh()
	w.lapPanel.Show()
}

func newLapRowObject(r lapRow) fyne.CanvasObject {
	label := canvas.NewText(r.Label, mutedColor)
	label.TextStyle.Monospace = true
	label.TextSize = stopwatch.FontSizeLapMeta

	split := canvas.NewText(r.Split, textColor)
	split.TextStyle.Monospace = true
	split.TextSize = stopwatch.FontSizeLap
	switch r.Highlight {
	case highlightFastest:
		split.Color = stopwatch.FastestColor
		split.TextStyle.Bold = true
	case highlightSlowest:
		split.Color = stopwatch.SlowestColor
		split.TextStyle.Bold = true
	}

	caption := canvas.NewText(i18n.T("Total"), dimColor)
	caption.TextSize = stopwatch.FontSizeLapMeta - 2
	caption.Alignment = fyne.TextAlignTrailing
	total := canvas.NewText(r.Total, textColor)
	total.TextStyle.Monospace = true
	total.TextSize = stopwatch.FontSizeLapMeta
	total.Alignment = fyne.TextAlignTrailing

	left := container.NewHBox(container.NewCenter(label), container.NewCenter(split))
	right := container.NewVBox(caption, total)
	return container.NewBorder(nil, nil, left, right)
}

// Controls holds one button per command; only the buttons offered in the
// current status are visible.
type Controls struct {
	buttons map[control.CommandType]*widget.Button
	row     *fyne.Container
}

func NewControls(a App) *Controls {
	c := &Controls{buttons: make(map[control.CommandType]*widget.Button)}

	add := func(t control.CommandType, label string, icon fyne.Resource, importance widget.Importance) {
		b := widget.NewButtonWithIcon(i18n.T(label), icon, func() {
			Send(a, t)
		})
		b.Importance = importance
		c.buttons[t] = b
	}
	add(control.CmdStart, "Start", theme.MediaPlayIcon(), widget.HighImportance)
	add(control.CmdLap, "Lap", theme.MediaRecordIcon(), widget.MediumImportance)
	add(control.CmdPause, "Stop", theme.MediaPauseIcon(), widget.DangerImportance)
	add(control.CmdReset, "Reset", theme.MediaReplayIcon(), widget.LowImportance)
	add(control.CmdResume, "Resume", theme.MediaPlayIcon(), widget.SuccessImportance)

	c.row = container.NewGridWithColumns(1)
	c.Show(ControlsFor(stopwatch.StatusIdle))
	return c
}

// Show lays out the given commands' buttons and hides the others. Call it on
// the fyne thread.
func (c *Controls) Show(types []control.CommandType) {
	objects := make([]fyne.CanvasObject, 0, len(types))
	for _, t := range types {
		if b, ok := c.buttons[t]; ok {
			objects = append(objects, b)
		}
	}
	c.row.Layout = layout.NewGridLayoutWithColumns(len(objects))
	c.row.Objects = objects
	c.row.Refresh()
}

// Tap presses the button of a command if it is currently offered.
func (c *Controls) Tap(t control.CommandType) {
	for _, o := range c.row.Objects {
		if b, ok := o.(*widget.Button); ok && b == c.buttons[t] {
			b.Tapped(&fyne.PointEvent{})
			return
		}
	}
}

func (c *Controls) CanvasObject() fyne.CanvasObject {
	return c.row
}

func BuildFooter(a App) fyne.CanvasObject {
	helpIcon := widget.NewIcon(theme.QuestionIcon())
	helpButton := NewTappableContainer(helpIcon, func() {
		a.ShowInfoDialog(i18n.T("Help"), fyne.NewSize(420, 260))
	}, nil)

	tagline := canvas.NewText("PRECISION TIMING • MINIMAL DESIGN", dimColor)
	tagline.TextSize = 10
	tagline.Alignment = fyne.TextAlignCenter

	return container.NewBorder(nil, nil, helpButton, nil, tagline)
}

func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "ZenTime"
	}
	w := fyneApp.NewWindow(title)

	header := canvas.NewText("ZENTIME", mutedColor)
	header.TextStyle.Bold = true
	header.TextSize = stopwatch.FontSizeLapMeta
	header.Alignment = fyne.TextAlignCenter

	sw := NewStopwatchWidget(a)
	a.SetDisplay(sw)
	controls := NewControls(a)
	a.SetControls(controls)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	content := container.NewVBox(
		header,
		layout.NewSpacer(),
		sw.Display(),
		layout.NewSpacer(),
		controls.CanvasObject(),
		sw.LapPanel(),
	)

	a.UpdateControlButtonState()

	cfg := a.Config()
	w.SetContent(container.NewBorder(nil, BuildFooter(a), nil, nil, container.NewPadded(content)))
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	return w
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
