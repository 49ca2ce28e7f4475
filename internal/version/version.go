package version

// Version is overridden at build time with -ldflags "-X github.com/bnema/f5m/internal/version.Version=...".
var Version = "dev"
