package platform

// Package platform contains pure helper functions shared by the scrape
// pipeline and the UI: champion name normalization and URL construction.
