package export

import (
	"fmt"
	"strings"

	"github.com/stratobim/ifcexport/model"
	"github.com/stratobim/ifcexport/psets"
)

// Profile determines which descriptive tables are attached to exported
// entities.
type Profile string

const (
	// ProfileMinimal attaches no property or quantity sets.
	ProfileMinimal Profile = "minimal"

	// ProfileStandard attaches the common property sets and base
	// quantities for each export kind.
	ProfileStandard Profile = "standard"

	// ProfileCOBie attaches the standard sets plus the COBie component
	// and type sheets.
	ProfileCOBie Profile = "cobie"
)

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// IncludePsets indicates whether common property sets are attached.
	IncludePsets bool

	// IncludeQuantities indicates whether base quantities are attached.
	IncludeQuantities bool

	// IncludeCOBie indicates whether the COBie sheets are attached.
	IncludeCOBie bool
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileMinimal: {
		Name:        ProfileMinimal,
		Description: "Entities and level fragments only",
	},
	ProfileStandard: {
		Name:              ProfileStandard,
		Description:       "Common property sets and base quantities",
		IncludePsets:      true,
		IncludeQuantities: true,
	},
	ProfileCOBie: {
		Name:              ProfileCOBie,
		Description:       "Standard sets plus COBie component/type sheets",
		IncludePsets:      true,
		IncludeQuantities: true,
		IncludeCOBie:      true,
	},
}

// GetProfileConfig returns the configuration for a profile, defaulting to
// the standard profile for unknown names.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileStandard]
}

// ParseProfile resolves a user-supplied profile name.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return ProfileMinimal, nil
	case "standard", "":
		return ProfileStandard, nil
	case "cobie":
		return ProfileCOBie, nil
	default:
		return "", fmt.Errorf("unknown profile %q (have: minimal, standard, cobie)", s)
	}
}

// definitionsFor returns the names of the property and quantity sets a
// profile attaches to the given export kind, in stable order.
func definitionsFor(reg *psets.Registry, config ProfileConfig, kind model.ExportKind) (propertySets, quantities []string) {
	if config.IncludePsets {
		for _, def := range reg.ForKind(kind, psets.ClassPropertySet) {
			if !config.IncludeCOBie && strings.HasPrefix(def.Name, "COBie_") {
				continue
			}
			propertySets = append(propertySets, def.Name)
		}
	}
	if config.IncludeQuantities {
		for _, def := range reg.ForKind(kind, psets.ClassQuantitySet) {
			quantities = append(quantities, def.Name)
		}
	}
	return propertySets, quantities
}
