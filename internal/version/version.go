// ABOUTME: Build identity constants
// ABOUTME: Used by the startup banner and window titles
package version

const (
	// Product is the user-facing product name.
	Product = "GammaStim"

	// Manufacturer identifies the project in logs and banners.
	Manufacturer = "GammaStim Project"

	// Version is the semantic version of this build.
	Version = "0.1.0"
)
