// Package main contains the application wiring and the AppManager which
// coordinates the stopwatch, the lap sound and the UI. This file centralizes
// the shared application state and the command loop used to serialize
// stopwatch operations.
//
// Maintenance notes / tips:
//   - Concurrency model: a single command-loop goroutine (see `commandLoop`)
//     applies Start/Pause/Resume/Reset/Lap one at a time. The stopwatch also
//     runs its own sampler goroutine while running; both go through the
//     stopwatch mutex, and Pause/Reset/Close wait for the sampler to exit.
//   - `cmdCh` is a buffered channel used to enqueue commands from the UI. The
//     current implementation drops commands when the channel stays full, so
//     the UI never blocks for long.
//   - Guarded commands (lap while stopped, reset while running, double start)
//     are not errors: the stopwatch ignores them and the loop logs them.
package main

import (
	"ZenTime/control"
	"ZenTime/i18n"
	"ZenTime/stopwatch"
	"ZenTime/ui"
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	config     stopwatch.Config
	stopwatch  *stopwatch.Stopwatch
	controls   *ui.Controls
	display    *ui.StopwatchWidget
	cmdCh      chan control.Command
	cmdCtx     context.Context
	cmdCancel  context.CancelFunc
	loopDone   chan struct{}

	lapSound    *beep.Buffer
	speakerLock sync.Mutex
	content     stopwatch.AppContentReader
}

// NewAppManager creates a new application manager.
func NewAppManager(content stopwatch.AppContentReader) *AppManager {
	cfg, err := stopwatch.LoadConfig(content)
	if err != nil {
		log.Fatalf("Failed to load stopwatch config: %v", err)
	}
	log.Printf("Loaded stopwatch config: tick %s, lap sound %t.", cfg.TickInterval(), cfg.LapSound)

	return newAppManager(content, cfg)
}

func newAppManager(content stopwatch.AppContentReader, cfg stopwatch.Config, opts ...stopwatch.Option) *AppManager {
	a := &AppManager{
		config:    cfg,
		stopwatch: stopwatch.New(cfg.TickInterval(), opts...),
		content:   content,
	}
	if cfg.LapSound {
		a.loadLapSound()
	}

	// Use a larger buffer for the command channel to reduce drops under brief bursts.
	a.cmdCh = make(chan control.Command, 256)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	a.loopDone = make(chan struct{})
	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

func (a *AppManager) commandLoop() {
	defer close(a.loopDone)
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			ok := a.apply(cmd.Type)
			if !ok {
				log.Printf("Ignoring %s command while %s", cmd.Type, a.stopwatch.Status())
			}
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- ok:
				default:
				}
			}
		}
	}
}

func (a *AppManager) apply(t control.CommandType) bool {
	switch t {
	case control.CmdStart:
		return a.stopwatch.Start()
	case control.CmdPause:
		return a.stopwatch.Pause()
	case control.CmdResume:
		return a.stopwatch.Resume()
	case control.CmdReset:
		return a.stopwatch.Reset()
	case control.CmdLap:
		lap, ok := a.stopwatch.RecordLap()
		if ok {
			log.Printf("Lap %d: split %s, total %s", lap.ID,
				stopwatch.FormatElapsed(lap.SplitMs).Clock(),
				stopwatch.FormatElapsed(lap.CumulativeMs).Clock())
			a.PlaySound()
		}
		return ok
	}
	return false
}

// Stopwatch returns the stopwatch driven by the command loop.
func (a *AppManager) Stopwatch() *stopwatch.Stopwatch {
	return a.stopwatch
}

// Config returns the loaded settings.
func (a *AppManager) Config() stopwatch.Config {
	return a.config
}

func (a *AppManager) loadLapSound() {
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v\n", err)
		return
	}

	tone, err := generators.SineTone(format.SampleRate, float64(a.config.LapToneHz))
	if err != nil {
		log.Printf("Audio disabled: Failed to generate lap tone: %v", err)
		return
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(beep.Take(format.SampleRate.N(a.config.LapTone()), tone))
	a.lapSound = buffer
	log.Printf("Lap tone ready: %d Hz, %s", a.config.LapToneHz, a.config.LapTone())
}

// PlaySound plays the lap tone.
func (a *AppManager) PlaySound() {
	if a.lapSound == nil {
		return
	}

	a.speakerLock.Lock()
	defer a.speakerLock.Unlock()

	speaker.Play(a.lapSound.Streamer(0, a.lapSound.Len()))
}

// UpdateControlButtonState shows the buttons offered in the current status.
func (a *AppManager) UpdateControlButtonState() {
	if a.controls == nil {
		return
	}
	offered := ui.ControlsFor(a.stopwatch.Status())
	fyne.Do(func() {
		a.controls.Show(offered)
	})
}

// toggleCommand is what space does in a given status.
func toggleCommand(s stopwatch.Status) control.CommandType {
	switch s {
	case stopwatch.StatusRunning:
		return control.CmdPause
	case stopwatch.StatusPaused:
		return control.CmdResume
	}
	return control.CmdStart
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	var cmd control.CommandType

	switch r {
	case ' ':
		cmd = toggleCommand(a.stopwatch.Status())
	case 'l', 'L':
		cmd = control.CmdLap
	case 'r', 'R':
		cmd = control.CmdReset
	default:
		return
	}

	// Press the on-screen button so keys are gated exactly like the controls.
	if a.controls != nil {
		a.controls.Tap(cmd)
		return
	}
	ui.Send(a, cmd)
}

// ShowInfoDialog shows the help text in a dialog with the given title.
func (a *AppManager) ShowInfoDialog(title string, minSize fyne.Size) {
	contentText, err := i18n.Help(a.content)
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(minSize)

	dialog.ShowCustom(title, i18n.T("Close"), scrollableContent, a.mainWindow)
}

// SetControls sets the control buttons.
func (a *AppManager) SetControls(c *ui.Controls) {
	a.controls = c
}

// SetDisplay sets the widget rendering the stopwatch.
func (a *AppManager) SetDisplay(d *ui.StopwatchWidget) {
	a.display = d
}

// Shutdown stops the command loop and the stopwatch sampler. No display
// update fires after it returns, including renders already queued on the
// fyne thread.
func (a *AppManager) Shutdown() {
	if a.display != nil {
		a.display.Stop()
	}
	if a.cmdCancel != nil {
		a.cmdCancel()
		<-a.loopDone
	}
	a.stopwatch.Close()
}
