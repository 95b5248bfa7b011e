package content

// Icon is one selectable Font Awesome icon.
type Icon struct {
	Class string
	Name  string
}

// icons shown in the statistic forms. The class values are stored verbatim.
var icons = []Icon{
	{Class: "fas fa-hard-hat", Name: "Hard Hat (Construction)"},
	{Class: "fas fa-tools", Name: "Tools"},
	{Class: "fas fa-hammer", Name: "Hammer"},
	{Class: "fas fa-wrench", Name: "Wrench"},
	{Class: "fas fa-drafting-compass", Name: "Drafting Compass"},
	{Class: "fas fa-solar-panel", Name: "Solar Panel"},
	{Class: "fas fa-water", Name: "Water / Irrigation"},
	{Class: "fas fa-road", Name: "Road"},
	{Class: "fas fa-truck-loading", Name: "Materials Supply"},
	{Class: "fas fa-tint", Name: "Water Drop (Borehole)"},
	{Class: "fas fa-award", Name: "Award / Quality"},
	{Class: "fas fa-users", Name: "Happy Clients"},
	{Class: "fas fa-handshake", Name: "Handshake / Partnership"},
	{Class: "fas fa-chart-line", Name: "Growth Chart"},
	{Class: "fas fa-star", Name: "Star / Rating"},
	{Class: "fas fa-user-shield", Name: "Safety / Shield"},
	{Class: "fas fa-building", Name: "Building"},
	{Class: "fas fa-clock", Name: "Clock / On Time"},
	{Class: "fas fa-check-circle", Name: "Check Circle (Certified)"},
}

// categories a project can belong to. Services may link to one of these to
// surface related projects on their detail page.
var categories = []string{
	"Building Construction",
	"Solar Systems",
	"Irrigation",
	"Drainage",
	"Surveying",
	"Fabrication",
	"General Construction",
}

// DefaultCategory is used when a project names no category.
const DefaultCategory = "General Construction"

// Icons returns the selectable statistic icons.
func Icons() []Icon {
	return icons
}

// Categories returns the project categories.
func Categories() []string {
	return categories
}

// ValidIcon reports whether class is one of the selectable icons.
func ValidIcon(class string) bool {
	for _, ic := range icons {
		if ic.Class == class {
			return true
		}
	}

	return false
}

// ValidCategory reports whether name is a known project category.
func ValidCategory(name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}

	return false
}
