// Package venues holds the static venue catalog and its filtering rules.
package venues

// Venue is one bookable space in the catalog. NameKey and LocationKey are
// translation keys; Location is the literal string the location filter
// matches against.
type Venue struct {
	ID          int      `json:"id"`
	NameKey     string   `json:"name_key"`
	LocationKey string   `json:"location_key"`
	Price       int      `json:"price"`
	Guests      int      `json:"guests"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Location    string   `json:"location"`
}

// Review is one guest review shown on a venue page.
type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

var catalog = []Venue{
	{
		ID:          1,
		NameKey:     "skylinePenthouse",
		LocationKey: "vakeTbilisi",
		Price:       450,
		Guests:      30,
		Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
			"https://images.unsplash.com/photo-1600607687939-ce6161a56a0c?w=800&q=80",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
		},
		Description: "Luxury penthouse with city views",
		Amenities:   []string{"wifi", "kitchen", "heating"},
		Location:    "Vake, Tbilisi",
	},
	{
		ID:          2,
		NameKey:     "gardenVilla",
		LocationKey: "saburtaloTbilisi",
		Price:       680,
		Guests:      50,
		Image:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
			"https://images.unsplash.com/photo-1600607687939-ce6161a56a0c?w=800&q=80",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
		},
		Description: "Beautiful garden villa with spacious grounds",
		Amenities:   []string{"wifi", "kitchen"},
		Location:    "Saburtalo, Tbilisi",
	},
	{
		ID:          3,
		NameKey:     "rooftopTerrace",
		LocationKey: "oldTownTbilisi",
		Price:       320,
		Guests:      25,
		Image:       "https://images.unsplash.com/photo-1600607687939-ce6161a56a0c?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1600607687939-ce6161a56a0c?w=800&q=80",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
		},
		Description: "Charming rooftop terrace in historic old town",
		Amenities:   []string{"wifi", "heating"},
		Location:    "Old Town, Tbilisi",
	},
	{
		ID:          4,
		NameKey:     "loftStudio",
		LocationKey: "veraTbilisi",
		Price:       280,
		Guests:      20,
		Image:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
			"https://images.unsplash.com/photo-1600607687939-ce6161a56a0c?w=800&q=80",
		},
		Description: "Modern loft studio with contemporary design",
		Amenities:   []string{"wifi", "kitchen", "heating"},
		Location:    "Vera, Tbilisi",
	},
	{
		ID:          5,
		NameKey:     "seasideVilla",
		LocationKey: "batumi",
		Price:       890,
		Guests:      60,
		Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
			"https://images.unsplash.com/photo-1600607687939-ce6161a56a0c?w=800&q=80",
		},
		Description: "Luxurious seaside villa with beach access",
		Amenities:   []string{"wifi", "kitchen"},
		Location:    "Batumi",
	},
	{
		ID:          6,
		NameKey:     "mountainRetreat",
		LocationKey: "borjomi",
		Price:       520,
		Guests:      35,
		Image:       "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&q=80",
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
		},
		Description: "Peaceful mountain retreat surrounded by nature",
		Amenities:   []string{"wifi", "heating"},
		Location:    "Borjomi",
	},
}

var reviews = []Review{
	{Name: "Sarah M.", Rating: 5, Text: "magari adgilia dzaan! dzaan magaria", Date: "2 weeks ago"},
	{Name: "John D.", Rating: 5, Text: "magari adgilia dzaan! dzaan magaria", Date: "1 month ago"},
	{Name: "Emma T.", Rating: 4, Text: "magari adgilia dzaan! dzaan magaria", Date: "2 months ago"},
	{Name: "Michael R.", Rating: 5, Text: "magari adgilia dzaan! dzaan magaria", Date: "3 months ago"},
	{Name: "Lisa K.", Rating: 5, Text: "magari adgilia dzaan! dzaan magaria", Date: "3 months ago"},
	{Name: "James B.", Rating: 4, Text: "magari adgilia dzaan! dzaan magaria", Date: "4 months ago"},
	{Name: "Rachel G.", Rating: 5, Text: "magari adgilia dzaan! dzaan magaria", Date: "4 months ago"},
	{Name: "David L.", Rating: 5, Text: "magari adgilia dzaan! dzaan magaria", Date: "5 months ago"},
}

// Catalog returns the full venue list in catalog order.
func Catalog() []Venue {
	out := make([]Venue, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks a venue up by its numeric id.
func ByID(id int) (*Venue, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			v := catalog[i]
			return &v, true
		}
	}
	return nil, false
}

// Reviews returns the sample reviews shown on every venue page.
func Reviews() []Review {
	out := make([]Review, len(reviews))
	copy(out, reviews)
	return out
}

// MinGuests maps a guest-range bucket to the minimum capacity a venue
// must hold. Unrecognized buckets fall through to the largest tier.
func MinGuests(bucket string) int {
	switch bucket {
	case "1-10":
		return 1
	case "11-25":
		return 11
	case "26-50":
		return 26
	default:
		return 50
	}
}

// Filter narrows the catalog by exact location match and by guest-range
// bucket. Empty parameters leave their dimension unfiltered.
func Filter(location, guests string) []Venue {
	filtered := Catalog()

	if location != "" {
		kept := filtered[:0]
		for _, v := range filtered {
			if v.Location == location {
				kept = append(kept, v)
			}
		}
		filtered = kept
	}

	if guests != "" {
		min := MinGuests(guests)
		kept := filtered[:0]
		for _, v := range filtered {
			if v.Guests >= min {
				kept = append(kept, v)
			}
		}
		filtered = kept
	}

	return filtered
}
