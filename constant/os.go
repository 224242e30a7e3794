package constant

// Values of runtime.GOOS the player and opener care about.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
