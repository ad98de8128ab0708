// Package internal provides version information and build metadata for the Sweep application.
//
// This module centralizes all version-related constants and provides formatted strings
// for consistent display across the application. To update the version, simply change
// the AppVersion constant - all other version strings will be automatically updated.
package internal

// Application metadata constants.
// These constants define the core identity and versioning information for Sweep.
//
// TO UPDATE THE VERSION: Change only AppVersion below - all other version-related
// strings throughout the application will be automatically updated.
const (
	// AppName is the official name of the application
	AppName = "Sweep"

	// AppVersion follows semantic versioning (major.minor.patch)
	AppVersion = "0.3.2"

	// AppAuthor contains author information
	AppAuthor = "the Sweep authors"

	// AppDesc is the tagline/description used in UI and documentation
	AppDesc = "The Beautiful Terminal Stopwatch & Countdown"
)

// GetVersionString returns just the version number for programmatic use.
// Example: "0.3.2"
func GetVersionString() string {
	return AppVersion
}

// GetFullVersionString returns the application name with version for display.
// Example: "Sweep v0.3.2"
func GetFullVersionString() string {
	return AppName + " v" + AppVersion
}

// GetAppTitle returns the complete application title including description.
// Used for the about screen header.
func GetAppTitle() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}

// GetSubtitle returns a compact version and author string for UI footers.
func GetSubtitle() string {
	return "v" + AppVersion + " by " + AppAuthor
}

// GetAboutText returns the standard about text for help screens.
func GetAboutText() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}
