package scrape

// Package scrape implements the core build pipeline: fetching the champion
// build page, locating the category tables inside the parsed document,
// converting rows into build data, and downloading item icons. The Service
// type manages the single background fetch task and propagates status
// updates to the UI through a callback.
