package request

// PackageRequest mirrors the travel package shape sent by the admin console
type PackageRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Duration    string   `json:"duration" validate:"required"`
	Highlights  []string `json:"highlights" validate:"min=1"`
	Inclusions  []string `json:"inclusions" validate:"min=1"`
}

// ResortRequest is built from the admin multipart form. Price and rating are
// pointers so "missing" and "zero" stay distinguishable: price 0 and rating 0
// are valid values.
type ResortRequest struct {
	Title            string   `json:"title" validate:"required"`
	Location         string   `json:"location" validate:"required"`
	Price            *float64 `json:"price" validate:"required,gte=0"`
	Rating           *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	// ordered paragraphs of the long description
	Description       []string         `json:"description"`
	MapLink           string           `json:"mapLink" validate:"required,embedlink"`
	VlogLink          string           `json:"vlogLink"`
	Amenities         []string         `json:"amenities"`
	Packages          []PackageRequest `json:"packages" validate:"omitempty,dive"`
	NearbyAttractions []string         `json:"nearbyAttractions"`

	// upload paths resolved by the handler, never sent by the client directly
	ImgSrc string   `json:"-"`
	Photos []string `json:"-"`
}
