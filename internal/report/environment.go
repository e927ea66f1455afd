package report

import (
	"os"
	"os/user"
)

// Environment answers the questions about the invoking process that end up
// in the report's metadata line.
type Environment interface {
	// Username returns the name of the invoking user.
	Username() (string, error)

	// Hostname returns the name of the host machine.
	Hostname() (string, error)
}

// SystemEnvironment queries the running process.
type SystemEnvironment struct{}

// Username returns the current user's login name, falling back to the
// USER and USERNAME environment variables.
func (SystemEnvironment) Username() (string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", err
}

// Hostname returns the kernel's host name.
func (SystemEnvironment) Hostname() (string, error) {
	return os.Hostname()
}

// StaticEnvironment returns fixed values. It is used by tests and by
// callers that want reproducible reports.
type StaticEnvironment struct {
	User string
	Host string
}

// Username returns the fixed user name.
func (e StaticEnvironment) Username() (string, error) {
	return e.User, nil
}

// Hostname returns the fixed host name.
func (e StaticEnvironment) Hostname() (string, error) {
	return e.Host, nil
}
