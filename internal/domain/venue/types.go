package venue

type Type string

type Category string

type Location string

// All is the "no constraint" sentinel for every categorical criterion.
const All = "All"

const (
	TypeWedding     Type = "Wedding Venue"
	TypeConference  Type = "Conference Center"
	TypeMeetingRoom Type = "Meeting Room"
	TypeBanquetHall Type = "Banquet Hall"
	TypeGarden      Type = "Garden/Outdoor"
	TypeRestaurant  Type = "Restaurant"
	TypeHotel       Type = "Hotel Ballroom"
	TypeCommunity   Type = "Community Hall"
	TypeExhibition  Type = "Exhibition Space"
	TypeSports      Type = "Sports Facility"
	TypeTheater     Type = "Theater/Auditorium"
)

const (
	CategoryWedding       Category = "Wedding"
	CategoryCorporate     Category = "Corporate Meeting"
	CategoryConference    Category = "Conference"
	CategoryBirthday      Category = "Birthday Party"
	CategoryExhibition    Category = "Exhibition"
	CategoryConcert       Category = "Concert"
	CategorySports        Category = "Sports Event"
	CategoryGraduation    Category = "Graduation"
	CategoryGalaDinner    Category = "Gala Dinner"
	CategoryProductLaunch Category = "Product Launch"
	CategoryWorkshop      Category = "Workshop"
)

const (
	LocationDowntown         Location = "Downtown"
	LocationCityPark         Location = "City Park"
	LocationBusinessDistrict Location = "Business District"
	LocationSuburbs          Location = "Suburbs"
)

var knownTypes = []Type{
	TypeWedding, TypeConference, TypeMeetingRoom, TypeBanquetHall, TypeGarden, TypeRestaurant,
	TypeHotel, TypeCommunity, TypeExhibition, TypeSports, TypeTheater,
}

var knownCategories = []Category{
	CategoryWedding, CategoryCorporate, CategoryConference, CategoryBirthday, CategoryExhibition,
	CategoryConcert, CategorySports, CategoryGraduation, CategoryGalaDinner, CategoryProductLaunch,
	CategoryWorkshop,
}

var knownLocations = []Location{
	LocationDowntown, LocationCityPark, LocationBusinessDistrict, LocationSuburbs,
}

func (t Type) IsKnown() bool {
	for _, k := range knownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// IsKnown reports whether c can be used as a filter value. Venues may carry
// other tags; those are shown but not filterable.
func (c Category) IsKnown() bool {
	for _, k := range knownCategories {
		if k == c {
			return true
		}
	}
	return false
}

func (l Location) IsKnown() bool {
	for _, k := range knownLocations {
		if k == l {
			return true
		}
	}
	return false
}

// Facets lists the selectable filter values, each led by the All sentinel.
type Facets struct {
	Types         []Type
	Categories    []Category
	Locations     []Location
	PriceRange    Range
	CapacityRange Range
}

func KnownFacets() Facets {
	d := DefaultCriteria()
	return Facets{
		Types:         append([]Type{All}, knownTypes...),
		Categories:    append([]Category{All}, knownCategories...),
		Locations:     append([]Location{All}, knownLocations...),
		PriceRange:    d.PriceRange,
		CapacityRange: d.CapacityRange,
	}
}
