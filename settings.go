package lansky

import (
	"fmt"
	"slices"
	"strings"
)

// Theme is the color scheme used to render the ledger.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme parses "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(s)); t {
	case Light, Dark:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q, want %q or %q", s, Light, Dark)
	}
}

const DefaultAppName = "Lansky"

// Color is a named accent color preset.
type Color struct {
	Name  string
	Value string
}

// Colors lists the accent presets offered by the settings.
var Colors = []Color{
	{Name: "Power Blue", Value: "#1e3a8a"},
	{Name: "Deep Indigo", Value: "#312e81"},
	{Name: "Royal Purple", Value: "#581c87"},
	{Name: "Crimson Rose", Value: "#881337"},
	{Name: "Forest Emerald", Value: "#064e3b"},
	{Name: "Burnt Amber", Value: "#78350f"},
}

// LookupColor resolves a preset name (case insensitive) or a "#rrggbb" value.
func LookupColor(s string) (string, error) {
	for _, c := range Colors {
		if strings.EqualFold(c.Name, s) {
			return c.Value, nil
		}
	}
	if len(s) == 7 && s[0] == '#' && strings.Trim(strings.ToLower(s[1:]), "0123456789abcdef") == "" {
		return strings.ToLower(s), nil
	}
	return "", fmt.Errorf("unknown color %q: use a preset name or #rrggbb", s)
}

// Settings is the process wide configuration of the ledger.
type Settings struct {
	AppName           string   `json:"appName"`
	LogoSVGOverride   string   `json:"logoSvgOverride,omitempty"`
	Platforms         []string `json:"platforms"`
	ExpenseCategories []string `json:"expenseCategories"`
	PrimaryColor      string   `json:"primaryColor"`
	Theme             Theme    `json:"theme"`
	InspectionMode    bool     `json:"inspectionMode"`
}

// DefaultSettings returns the settings of a brand new ledger.
func DefaultSettings() Settings {
	return Settings{
		AppName:   DefaultAppName,
		Platforms: []string{"eBay", "Poshmark", "Mercari", "Facebook", "Whatnot", "Other"},
		ExpenseCategories: []string{
			"Office Supplies",
			"Packaging/Boxes",
			"Gas & Mileage",
			"Inventory Software",
			"Advertising",
			"Thrift/Sourcing Costs",
			"Other",
		},
		PrimaryColor:   Colors[0].Value,
		Theme:          Light,
		InspectionMode: false,
	}
}

// SettingsPatch lists the changes to apply to Settings. Nil fields are left untouched.
type SettingsPatch struct {
	AppName          *string
	LogoSVGOverride  *string
	PrimaryColor     *string
	Theme            *Theme
	InspectionMode   *bool
	AddPlatforms     []string
	RemovePlatforms  []string
	AddCategories    []string
	RemoveCategories []string
}

// IsEmpty reports whether the patch would change nothing.
func (p SettingsPatch) IsEmpty() bool {
	return p.AppName == nil && p.LogoSVGOverride == nil && p.PrimaryColor == nil &&
		p.Theme == nil && p.InspectionMode == nil &&
		len(p.AddPlatforms) == 0 && len(p.RemovePlatforms) == 0 &&
		len(p.AddCategories) == 0 && len(p.RemoveCategories) == 0
}

// Apply returns a copy of s with the patch merged in.
//
// Adding a platform or a category that is already listed is a no-op, so the
// lists never hold duplicates.
func (s Settings) Apply(p SettingsPatch) (Settings, error) {
	if p.AppName != nil {
		if strings.TrimSpace(*p.AppName) == "" {
			return s, fmt.Errorf("app name cannot be empty")
		}
		s.AppName = *p.AppName
	}
	if p.LogoSVGOverride != nil {
		s.LogoSVGOverride = *p.LogoSVGOverride
	}
	if p.PrimaryColor != nil {
		c, err := LookupColor(*p.PrimaryColor)
		if err != nil {
			return s, err
		}
		s.PrimaryColor = c
	}
	if p.Theme != nil {
		t, err := ParseTheme(string(*p.Theme))
		if err != nil {
			return s, err
		}
		s.Theme = t
	}
	if p.InspectionMode != nil {
		s.InspectionMode = *p.InspectionMode
	}

	var err error
	if s.Platforms, err = editList(s.Platforms, p.AddPlatforms, p.RemovePlatforms); err != nil {
		return s, fmt.Errorf("invalid platform: %w", err)
	}
	if s.ExpenseCategories, err = editList(s.ExpenseCategories, p.AddCategories, p.RemoveCategories); err != nil {
		return s, fmt.Errorf("invalid category: %w", err)
	}
	return s, nil
}

// editList returns a new list with values removed then added, keeping the order.
func editList(list, add, remove []string) ([]string, error) {
	out := slices.Clone(list)
	for _, v := range remove {
		out = slices.DeleteFunc(out, func(x string) bool { return x == v })
	}
	for _, v := range add {
		v = strings.TrimSpace(v)
		if v == "" {
			return list, fmt.Errorf("empty value")
		}
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}
