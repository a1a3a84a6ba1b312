package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires the search field to the scrape service and renders
// the aggregated build data as tabbed, scrollable category views. All UI
// strings are localized via Localization.
