//go:build !amd64 && !arm64

package solver

func init() {
	// Other architectures report scalar for now.
	currentLevel = DispatchScalar
	currentName = "scalar"
}
