package response

import (
	"time"

	"resort-booking/internal/data/entity"
)

type ResortResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Location         string    `json:"location"`
	Price            float64   `json:"price"`
	Rating           float64   `json:"rating"`
	ImgSrc           string    `json:"img_src,omitempty"`
	ShortDescription string    `json:"short_description"`
	Amenities        []string  `json:"amenities"`
	CreatedAt        time.Time `json:"created_at"`
}

// ResortDetailResponse adds the fields only the detail page renders
type ResortDetailResponse struct {
	ResortResponse
	Photos            []string               `json:"photos"`
	Description       []string               `json:"description"`
	MapLink           string                 `json:"map_link"`
	VlogLink          string                 `json:"vlog_link,omitempty"`
	Packages          []entity.TravelPackage `json:"packages,omitempty"`
	NearbyAttractions []string               `json:"nearby_attractions,omitempty"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// PopularResortResponse is the trimmed dashboard card shape
type PopularResortResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	ImgSrc   string  `json:"img_src,omitempty"`
}

func ResortToResponse(resort *entity.Resort) ResortResponse {
	amenities := resort.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return ResortResponse{
		ID:               resort.ID.String(),
		Title:            resort.Title,
		Location:         resort.Location,
		Price:            resort.Price,
		Rating:           resort.Rating,
		ImgSrc:           resort.ImgSrc,
		ShortDescription: resort.ShortDescription,
		Amenities:        amenities,
		CreatedAt:        resort.CreatedAt,
	}
}

func ResortToDetailResponse(resort *entity.Resort) ResortDetailResponse {
	photos := resort.Photos
	if photos == nil {
		photos = []string{}
	}
	description := resort.Description
	if description == nil {
		description = []string{}
	}

	return ResortDetailResponse{
		ResortResponse:    ResortToResponse(resort),
		Photos:            photos,
		Description:       description,
		MapLink:           resort.MapLink,
		VlogLink:          resort.VlogLink,
		Packages:          resort.Packages,
		NearbyAttractions: resort.NearbyAttractions,
		UpdatedAt:         resort.UpdatedAt,
	}
}

func ResortToPopularResponse(resort *entity.Resort) PopularResortResponse {
	return PopularResortResponse{
		ID:       resort.ID.String(),
		Title:    resort.Title,
		Location: resort.Location,
		Price:    resort.Price,
		Rating:   resort.Rating,
		ImgSrc:   resort.ImgSrc,
	}
}
