package app

// NavItem is one link of the sidebar.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	// Icon is a lucide icon name.
	Icon string `json:"icon"`
}

// NavSection groups sidebar links under an optional heading.
type NavSection struct {
	Title string    `json:"title,omitempty"`
	Items []NavItem `json:"items"`
}

var navigation = []NavSection{
	{
		Items: []NavItem{
			{Label: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"},
		},
	},
	{
		Title: "Tables",
		Items: []NavItem{
			{Label: "Rides", Path: "/rides", Icon: "car-taxi-front"},
			{Label: "Drivers", Path: "/drivers", Icon: "id-card"},
			{Label: "Passengers", Path: "/passengers", Icon: "users"},
			{Label: "Feedbacks", Path: "/feedbacks", Icon: "message-circle"},
			{Label: "Admins", Path: "/admins", Icon: "user-star"},
		},
	},
	{
		Title: "Tools",
		Items: []NavItem{
			{Label: "QR Code Generator", Path: "/qr-code-generator", Icon: "qr-code"},
			{Label: "Location Finder", Path: "/location-finder", Icon: "map-pin"},
		},
	},
}

// Navigation returns a copy of the sidebar sections.
func Navigation() []NavSection {
	out := make([]NavSection, len(navigation))
	for i, s := range navigation {
		out[i] = NavSection{Title: s.Title, Items: append([]NavItem(nil), s.Items...)}
	}
	return out
}
