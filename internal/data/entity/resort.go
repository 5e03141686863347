package entity

// TravelPackage is an optional structured offer attached to a resort,
// stored as JSONB alongside the resort row.
type TravelPackage struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Highlights  []string `json:"highlights"`
	Inclusions  []string `json:"inclusions"`
}

type Resort struct {
	BaseNoDelete
	Title            string   `db:"title"`
	Location         string   `db:"location"`
	Price            float64  `db:"price"`
	Rating           float64  `db:"rating"`
	ImgSrc           string   `db:"img_src"`
	Photos           []string `db:"photos"`
	Amenities        []string `db:"amenities"`
	ShortDescription string   `db:"short_description"`
	// Description holds the long description as ordered paragraphs
	Description       []string        `db:"description"`
	MapLink           string          `db:"map_link"`
	VlogLink          string          `db:"vlog_link"`
	Packages          []TravelPackage `db:"packages"`
	NearbyAttractions []string        `db:"nearby_attractions"`
}
