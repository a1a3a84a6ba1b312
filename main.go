package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/aramlens/aram-builds/internal/platform"
	"github.com/aramlens/aram-builds/internal/scrape"
	"github.com/aramlens/aram-builds/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.aramlens.aram-builds"
	AppName = "ARAM Builds"

	WindowWidth  = 1100
	WindowHeight = 800
)

func main() {
	// Log version information
	fmt.Printf("ARAM Builds v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	client := scrape.NewClient(scrape.ClientOptions{})
	fetchSvc := scrape.NewService(platform.DefaultBaseURL, client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, fetchSvc)

	// Show and run
	myWindow.ShowAndRun()
}
