package version

// Version is the semantic version of the integration. Overridden at build
// time via -ldflags for release builds.
var Version = "1.2.0-dev"
