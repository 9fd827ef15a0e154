package utils

import (
	"fmt"
	"strings"
)

// Party identifies one signing party on a proposal
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// BuildPartyDetails encodes a party as the text block stored on proposals.
// ParsePartyDetails is its inverse for well-formed input. Field values must
// not contain newlines; callers normalize multi-line addresses to one line.
func BuildPartyDetails(p Party) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", strings.TrimSpace(p.Name))
	fmt.Fprintf(&b, "Email: %s\n", strings.TrimSpace(p.Email))
	fmt.Fprintf(&b, "Address: %s\n", strings.TrimSpace(p.Address))
	return b.String()
}

// ParsePartyDetails decodes a party-details text block. Unknown lines are
// ignored; a missing name or email is an error.
func ParsePartyDetails(block string) (Party, error) {
	var p Party
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			p.Name = value
		case "email":
			p.Email = value
		case "address":
			p.Address = value
		}
	}
	if p.Name == "" {
		return Party{}, fmt.Errorf("party details block is missing a name")
	}
	if p.Email == "" {
		return Party{}, fmt.Errorf("party details block is missing an email")
	}
	return p, nil
}
