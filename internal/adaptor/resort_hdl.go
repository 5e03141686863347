package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"resort-booking/internal/dto/request"
	"resort-booking/internal/usecase"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	maxUploadMemory = 32 << 20
	maxResortPhotos = 10
)

type ResortHandler struct {
	service    usecase.ResortService
	uploadPath string
	log        *zap.Logger
}

func NewResortHandler(service usecase.ResortService, uploadPath string, log *zap.Logger) *ResortHandler {
	return &ResortHandler{
		service:    service,
		uploadPath: uploadPath,
		log:        log.With(zap.String("handler", "resort")),
	}
}

// GetResorts handles GET /api/resorts
func (h *ResortHandler) GetResorts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resorts, err := h.service.GetResorts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get resorts")
		return
	}

	utils.ResponseSuccess(w, "Resorts retrieved successfully", resorts)
}

// SearchResorts handles GET /api/resorts/search. Destination matches title
// or location; title matches title only. Destination wins when both are set.
func (h *ResortHandler) SearchResorts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resorts, err := h.service.SearchResorts(r.Context(),
		strings.TrimSpace(query.Get("destination")),
		strings.TrimSpace(query.Get("title")))
	if err != nil {
		handleServiceError(w, h.log, err, "search resorts")
		return
	}

	utils.ResponseSuccess(w, "Resorts retrieved successfully", resorts)
}

// GetResortByID handles GET /api/resorts/{id}
func (h *ResortHandler) GetResortByID(w http.ResponseWriter, r *http.Request) {
	resortID := chi.URLParam(r, "id")
	if resortID == "" {
		utils.ResponseBadRequest(w, "Resort ID is required", nil)
		return
	}

	resort, err := h.service.GetResortByID(r.Context(), resortID)
	if err != nil {
		handleServiceError(w, h.log, err, "get resort by ID")
		return
	}

	utils.ResponseSuccess(w, "Resort retrieved successfully", resort)
}

// CreateResort handles POST /api/admin/resorts (multipart form)
func (h *ResortHandler) CreateResort(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseResortForm(r)
	if err != nil {
		h.log.Warn("Invalid resort form", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	resort, err := h.service.CreateResort(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create resort")
		return
	}

	utils.ResponseCreated(w, "Resort created successfully", resort)
}

// UpdateResort handles PUT /api/admin/resorts/{id} (multipart form).
// Images not re-uploaded are kept from the stored record.
func (h *ResortHandler) UpdateResort(w http.ResponseWriter, r *http.Request) {
	resortID := chi.URLParam(r, "id")
	if resortID == "" {
		utils.ResponseBadRequest(w, "Resort ID is required", nil)
		return
	}

	req, err := h.parseResortForm(r)
	if err != nil {
		h.log.Warn("Invalid resort form", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	resort, err := h.service.UpdateResort(r.Context(), resortID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update resort")
		return
	}

	utils.ResponseSuccess(w, "Resort updated successfully", resort)
}

// DeleteResort handles DELETE /api/admin/resorts/{id}
func (h *ResortHandler) DeleteResort(w http.ResponseWriter, r *http.Request) {
	resortID := chi.URLParam(r, "id")
	if resortID == "" {
		utils.ResponseBadRequest(w, "Resort ID is required", nil)
		return
	}

	if err := h.service.DeleteResort(r.Context(), resortID); err != nil {
		handleServiceError(w, h.log, err, "delete resort")
		return
	}

	utils.ResponseSuccess(w, "Resort deleted successfully", nil)
}

// parseResortForm reads the admin console's multipart payload. Scalar fields
// arrive as plain form values, list fields as JSON strings, images as files.
func (h *ResortHandler) parseResortForm(r *http.Request) (*request.ResortRequest, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	req := &request.ResortRequest{
		Title:            strings.TrimSpace(r.FormValue("title")),
		Location:         strings.TrimSpace(r.FormValue("location")),
		ShortDescription: strings.TrimSpace(r.FormValue("shortDescription")),
		MapLink:          strings.TrimSpace(r.FormValue("mapLink")),
		VlogLink:         strings.TrimSpace(r.FormValue("vlogLink")),
	}

	// Missing price/rating stays nil so validation reports it as required,
	// while an explicit 0 passes through.
	if value := r.FormValue("price"); value != "" {
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("price must be a number")
		}
		req.Price = &price
	}
	if value := r.FormValue("rating"); value != "" {
		rating, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("rating must be a number")
		}
		req.Rating = &rating
	}

	if err := parseJSONField(r.FormValue("description"), &req.Description); err != nil {
		return nil, fmt.Errorf("description must be a JSON array of strings")
	}
	if err := parseJSONField(r.FormValue("amenities"), &req.Amenities); err != nil {
		return nil, fmt.Errorf("amenities must be a JSON array of strings")
	}
	if err := parseJSONField(r.FormValue("nearbyAttractions"), &req.NearbyAttractions); err != nil {
		return nil, fmt.Errorf("nearbyAttractions must be a JSON array of strings")
	}
	if err := parseJSONField(r.FormValue("packages"), &req.Packages); err != nil {
		return nil, fmt.Errorf("packages must be a JSON array of package objects")
	}

	if files := r.MultipartForm.File["imgSrc"]; len(files) > 0 {
		path, err := utils.SaveUploadedFile(files[0], h.uploadPath)
		if err != nil {
			h.log.Error("Failed to save cover image", zap.Error(err))
			return nil, fmt.Errorf("failed to save cover image")
		}
		req.ImgSrc = path
	}

	photos := r.MultipartForm.File["photos"]
	if len(photos) > maxResortPhotos {
		return nil, fmt.Errorf("at most %d photos are allowed", maxResortPhotos)
	}
	for _, fh := range photos {
		path, err := utils.SaveUploadedFile(fh, h.uploadPath)
		if err != nil {
			h.log.Error("Failed to save photo", zap.Error(err))
			return nil, fmt.Errorf("failed to save photo")
		}
		req.Photos = append(req.Photos, path)
	}

	return req, nil
}

// parseJSONField decodes a JSON-encoded form value, leaving the target
// untouched when the field was not sent at all.
func parseJSONField(value string, target any) error {
	if value == "" {
		return nil
	}
	return json.Unmarshal([]byte(value), target)
}
