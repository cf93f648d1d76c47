package utils

// Set at build time with -ldflags "-X github.com/brian1917/vmmtool/utils.version=..."
var (
	version = "dev"
	commit  = "none"
)

// GetVersion returns the vmmtool version
func GetVersion() string {
	return version
}

// GetCommit returns the commit vmmtool was built from
func GetCommit() string {
	return commit
}
