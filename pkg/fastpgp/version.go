package fastpgp

var (
	Version       = "v0.0.0-in-progress"
	EngineVersion = "unknown"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeEngineVersion returns the pinned engine library version, or
// "not linked" when the binary carries no native engine.
func NativeEngineVersion() string {
	if !NativeLinked() {
		return "not linked"
	}
	return EngineVersion
}
