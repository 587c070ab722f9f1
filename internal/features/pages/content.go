// ================== internal/features/pages/content.go ==================
package pages

// Page is a static informational panel. Content is fixed; presentation
// is entirely the client's concern.
type Page struct {
	Slug  string   `json:"slug" example:"about"`
	Title string   `json:"title" example:"About the spring"`
	Body  []string `json:"body"`
}

var slugs = []string{"about", "privacy", "accessibility"}

var content = map[string]Page{
	"about": {
		Slug:  "about",
		Title: "About the spring",
		Body: []string{
			"This site shows the current condition of the spring pool, reported by the visitors themselves.",
			"Each report carries a photo, a cleanliness rating from 1 (very dirty) to 5 (very clean) and an optional comment.",
			"To keep the feed useful, one report can be submitted per cooldown period. If someone reported recently, come back later.",
		},
	},
	"privacy": {
		Slug:  "privacy",
		Title: "Privacy",
		Body: []string{
			"Reports are anonymous. No account is needed and no personal details are collected.",
			"Uploaded photos and comments are publicly visible to every visitor of this site.",
			"Please avoid photographing people in a recognizable way.",
		},
	},
	"accessibility": {
		Slug:  "accessibility",
		Title: "Accessibility",
		Body: []string{
			"The spring area is reachable by a paved path from the parking lot.",
			"The pool itself has natural, uneven edges. Assistance may be needed close to the water.",
			"For accessibility issues with this site, contact the site maintainers.",
		},
	},
}
