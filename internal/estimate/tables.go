package estimate

// DefaultBaseHours is used for any project type the table does not know.
const DefaultBaseHours = 40

// CustomProjectType is the key whose label unknown project types resolve to.
const CustomProjectType = "custom"

type ProjectType struct {
	Key       string `toml:"key" json:"key" validate:"required"`
	Label     string `toml:"label" json:"label" validate:"required"`
	BaseHours int    `toml:"base_hours" json:"base_hours" validate:"gte=0"`
}

type Feature struct {
	Key   string `toml:"key" json:"key" validate:"required"`
	Label string `toml:"label" json:"label" validate:"required"`
	Hours int    `toml:"hours" json:"hours" validate:"gte=0"`
}

// Tables holds the project-type and feature lookup tables. Entries keep the
// order they were given in, which is the order they are displayed in.
type Tables struct {
	projectTypes []ProjectType
	features     []Feature
	typeIndex    map[string]int
	featureIndex map[string]int
}

// NewTables builds lookup tables. A later entry with a duplicate key replaces
// the earlier one in place.
func NewTables(projectTypes []ProjectType, features []Feature) *Tables {
	t := &Tables{
		typeIndex:    make(map[string]int, len(projectTypes)),
		featureIndex: make(map[string]int, len(features)),
	}
	for _, pt := range projectTypes {
		if i, ok := t.typeIndex[pt.Key]; ok {
			t.projectTypes[i] = pt
			continue
		}
		t.typeIndex[pt.Key] = len(t.projectTypes)
		t.projectTypes = append(t.projectTypes, pt)
	}
	for _, f := range features {
		if i, ok := t.featureIndex[f.Key]; ok {
			t.features[i] = f
			continue
		}
		t.featureIndex[f.Key] = len(t.features)
		t.features = append(t.features, f)
	}
	return t
}

// DefaultProjectTypes are the stock web project types.
func DefaultProjectTypes() []ProjectType {
	return []ProjectType{
		{Key: "landing", Label: "Landing Page", BaseHours: 12},
		{Key: "brochure", Label: "Brochure Website", BaseHours: 24},
		{Key: "blog", Label: "Blog / Content Site", BaseHours: 30},
		{Key: "ecommerce", Label: "E-commerce Store", BaseHours: 60},
		{Key: "webapp", Label: "Web Application", BaseHours: 80},
		{Key: CustomProjectType, Label: "Custom Project", BaseHours: 40},
	}
}

// DefaultFeatures are the stock add-on features.
func DefaultFeatures() []Feature {
	return []Feature{
		{Key: "contact-form", Label: "Contact Form", Hours: 4},
		{Key: "cms", Label: "CMS Integration", Hours: 12},
		{Key: "seo", Label: "SEO Optimisation", Hours: 6},
		{Key: "analytics", Label: "Analytics Setup", Hours: 3},
		{Key: "auth", Label: "User Accounts", Hours: 16},
		{Key: "payments", Label: "Payment Gateway", Hours: 16},
		{Key: "multilingual", Label: "Multi-language", Hours: 10},
		{Key: "api", Label: "Third-party API", Hours: 12},
	}
}

func DefaultTables() *Tables {
	return NewTables(DefaultProjectTypes(), DefaultFeatures())
}

// BaseHours returns the base estimate for key, DefaultBaseHours when the key
// is unknown, and 0 for a negative table value.
func (t *Tables) BaseHours(key string) int {
	i, ok := t.typeIndex[key]
	if !ok {
		return DefaultBaseHours
	}
	return nonNegative(t.projectTypes[i].BaseHours)
}

// FeatureHours returns the hours a feature adds, 0 when unknown.
func (t *Tables) FeatureHours(key string) int {
	i, ok := t.featureIndex[key]
	if !ok {
		return 0
	}
	return nonNegative(t.features[i].Hours)
}

// Label resolves the display label of a project type. Unknown keys resolve
// to the custom project label.
func (t *Tables) Label(key string) string {
	if i, ok := t.typeIndex[key]; ok {
		return t.projectTypes[i].Label
	}
	if i, ok := t.typeIndex[CustomProjectType]; ok {
		return t.projectTypes[i].Label
	}
	return "Custom Project"
}

func (t *Tables) HasProjectType(key string) bool {
	_, ok := t.typeIndex[key]
	return ok
}

func (t *Tables) HasFeature(key string) bool {
	_, ok := t.featureIndex[key]
	return ok
}

func (t *Tables) ProjectTypes() []ProjectType {
	out := make([]ProjectType, len(t.projectTypes))
	copy(out, t.projectTypes)
	return out
}

func (t *Tables) Features() []Feature {
	out := make([]Feature, len(t.features))
	copy(out, t.features)
	return out
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
