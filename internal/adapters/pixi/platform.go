// internal/adapters/pixi/platform.go
package pixi

import "runtime"

var platforms = map[string]string{
	"linux/amd64":   "linux-64",
	"linux/arm64":   "linux-aarch64",
	"linux/ppc64le": "linux-ppc64le",
	"darwin/amd64":  "osx-64",
	"darwin/arm64":  "osx-arm64",
	"windows/amd64": "win-64",
	"windows/arm64": "win-arm64",
}

// DetectPlatform returns the conda platform of the running binary.
func DetectPlatform() string {
	return PlatformFor(runtime.GOOS, runtime.GOARCH)
}

// PlatformFor maps a GOOS/GOARCH pair to a conda platform name. Unknown
// pairs map to linux-64.
func PlatformFor(goos, goarch string) string {
	if p, ok := platforms[goos+"/"+goarch]; ok {
		return p
	}
	return "linux-64"
}
