// Package learner resolves the identity activity is recorded under.
// There is no account system: the name comes from the PATENTE_LEARNER
// environment variable and falls back to a guest profile.
package learner

import (
	"os"
	"strings"
)

// GuestName is used when no learner name is configured.
const GuestName = "guest"

// Profile identifies the current learner.
type Profile struct {
	Name  string
	Guest bool
}

// Current resolves the active profile from the environment.
func Current() Profile {
	return fromEnv(os.Getenv("PATENTE_LEARNER"))
}

func fromEnv(raw string) Profile {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Profile{Name: GuestName, Guest: true}
	}
	return Profile{Name: name}
}

// UserID is the identifier written into exam records. Guest activity is
// recorded with an empty user id, matching records from before a learner
// name was configured.
func (p Profile) UserID() string {
	if p.Guest {
		return ""
	}
	return p.Name
}

// DisplayName is the name shown in the UI header.
func (p Profile) DisplayName() string {
	return p.Name
}
