package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Library
	Main_version = "v0.1.0"

	// Packages
	Validators    = "v0.1.0"
	DNA           = "v0.1.0"
	RNA           = "v0.1.0"
	FASTA_IO      = "v0.2.0" // gzip read/write
	Visualization = "v0.2.0" // SVG plots
)
