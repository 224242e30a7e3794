package constant

import _ "embed"

// AsciiArtLogo is printed above the version banner.
//
//go:embed ascii.txt
var AsciiArtLogo string
