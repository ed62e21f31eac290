package main

import (
	"ZenTime/ui"
	"embed"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
)

//go:embed assets/*
var content embed.FS

func main() {
	fyneApp := app.New()
	fyneApp.SetIcon(theme.HistoryIcon())
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a := NewAppManager(content)

	w := ui.CreateMainWindow(a, fyneApp)
	a.mainWindow = w

	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
}
