package scheme

import "github.com/janseva-cloud/sevadex/internal/domain/search/query"

// Scheme is one entry in the welfare-scheme catalog. The catalog is small and
// slow-changing, so it ships with the binary instead of living in a
// collection; schemes are visible to every caller, authenticated or not.
type Scheme struct {
	id          string
	name        string
	localName   string
	description string
	category    string
}

// New creates a catalog entry. localName is the alternate-language (Hindi)
// name; both names participate in matching.
func New(id, name, localName, description, category string) Scheme {
	return Scheme{
		id:          id,
		name:        name,
		localName:   localName,
		description: description,
		category:    category,
	}
}

// ID returns the catalog identifier.
func (s Scheme) ID() string { return s.id }

// Name returns the English display name.
func (s Scheme) Name() string { return s.name }

// LocalName returns the Hindi name.
func (s Scheme) LocalName() string { return s.localName }

// Description returns the scheme description.
func (s Scheme) Description() string { return s.description }

// Category returns the scheme category.
func (s Scheme) Category() string { return s.category }

// Matches reports whether q is contained in any display field. This is an OR
// across fields with first-match inclusion, not a weighted score.
func (s Scheme) Matches(q query.Query) bool {
	return q.MatchesAny(s.name, s.localName, s.description, s.category)
}

// Catalog returns the built-in scheme catalog in presentation order.
func Catalog() []Scheme {
	return catalog
}

var catalog = []Scheme{
	New("ayushman-bharat", "Ayushman Bharat Scheme", "आयुष्मान भारत योजना",
		"Health insurance cover of five lakh rupees per family per year for secondary and tertiary care hospitalisation.",
		"Health"),
	New("pm-kisan", "PM Kisan Samman Nidhi", "प्रधानमंत्री किसान सम्मान निधि",
		"Income support of six thousand rupees per year for land-holding farmer families, paid in three instalments.",
		"Agriculture"),
	New("pm-awas", "Pradhan Mantri Awas Yojana", "प्रधानमंत्री आवास योजना",
		"Financial assistance for construction of pucca houses for eligible rural and urban households.",
		"Housing"),
	New("sukanya-samriddhi", "Sukanya Samriddhi Yojana", "सुकन्या समृद्धि योजना",
		"Small deposit savings scheme for the girl child with tax benefits and a high fixed interest rate.",
		"Finance"),
	New("atal-pension", "Atal Pension Yojana", "अटल पेंशन योजना",
		"Guaranteed minimum monthly pension for subscribers in the unorganised sector after the age of sixty.",
		"Pension"),
	New("pm-ujjwala", "Pradhan Mantri Ujjwala Yojana", "प्रधानमंत्री उज्ज्वला योजना",
		"Free LPG connections to women from below-poverty-line households.",
		"Welfare"),
	New("national-scholarship", "National Scholarship Portal", "राष्ट्रीय छात्रवृत्ति पोर्टल",
		"Single window for scholarship schemes for students from minority and economically weaker sections.",
		"Education"),
	New("mgnrega", "Mahatma Gandhi NREGA", "महात्मा गांधी नरेगा",
		"Legal guarantee of one hundred days of wage employment per year to rural households.",
		"Employment"),
	New("pm-fasal-bima", "PM Fasal Bima Yojana", "प्रधानमंत्री फसल बीमा योजना",
		"Crop insurance against natural calamities, pests and diseases at subsidised premium rates.",
		"Agriculture"),
	New("digital-ration", "One Nation One Ration Card", "एक राष्ट्र एक राशन कार्ड",
		"Nationwide portability of ration card entitlements under the public distribution system.",
		"Food Security"),
}
