package model

// Package model defines domain data structures used across the app: build
// items and rows, category result sets, and fetch task status enums.
// Structures are designed for direct consumption by the UI and explicit
// state transitions.
