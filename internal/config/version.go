package config

// AppName is the full name of the application, used for display.
const AppName = "AmiiboGenerator"

// Version is the current version of the application.
// This variable can be overwritten at build time using -ldflags.
// Example: go build -ldflags "-X 'github.com/yusufakg/AmiiboGenerator/internal/config.Version=v2.1.0'"
var Version = "v2.0.0"
