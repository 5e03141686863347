package usecase

import (
	"context"
	"fmt"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResortService interface {
	GetResorts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ResortResponse], error)
	SearchResorts(ctx context.Context, destination, title string) ([]response.ResortResponse, error)
	GetResortByID(ctx context.Context, resortID string) (*response.ResortDetailResponse, error)
	CreateResort(ctx context.Context, req *request.ResortRequest) (*response.ResortDetailResponse, error)
	UpdateResort(ctx context.Context, resortID string, req *request.ResortRequest) (*response.ResortDetailResponse, error)
	DeleteResort(ctx context.Context, resortID string) error
}

type resortService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewResortService(repo *repository.Repository, log *zap.Logger) ResortService {
	return &resortService{
		repo: repo,
		log:  log.With(zap.String("service", "resort")),
	}
}

func (s *resortService) GetResorts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ResortResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	resorts, err := s.repo.Resort.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get resorts",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get resorts: %w", err)
	}

	total, err := s.repo.Resort.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count resorts", zap.Error(err))
		return nil, fmt.Errorf("count resorts: %w", err)
	}

	resortResponses := make([]response.ResortResponse, len(resorts))
	for i, resort := range resorts {
		resortResponses[i] = response.ResortToResponse(resort)
	}

	s.log.Info("Resorts retrieved",
		zap.Int("count", len(resorts)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(resortResponses, req.Page, req.PerPage, total), nil
}

func (s *resortService) SearchResorts(ctx context.Context, destination, title string) ([]response.ResortResponse, error) {
	resorts, err := s.repo.Resort.Search(ctx, destination, title)
	if err != nil {
		s.log.Error("Failed to search resorts",
			zap.Error(err),
			zap.String("destination", destination),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("search resorts: %w", err)
	}

	resortResponses := make([]response.ResortResponse, len(resorts))
	for i, resort := range resorts {
		resortResponses[i] = response.ResortToResponse(resort)
	}

	s.log.Info("Resorts searched",
		zap.String("destination", destination),
		zap.String("title", title),
		zap.Int("count", len(resorts)),
	)

	return resortResponses, nil
}

func (s *resortService) GetResortByID(ctx context.Context, resortID string) (*response.ResortDetailResponse, error) {
	id, err := uuid.Parse(resortID)
	if err != nil {
		s.log.Warn("Invalid resort ID format", zap.String("resort_id", resortID))
		return nil, fmt.Errorf("%w: invalid resort id", ErrValidation)
	}

	resort, err := s.repo.Resort.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get resort by ID",
			zap.Error(err), zap.String("resort_id", resortID))
		return nil, fmt.Errorf("get resort by id: %w", err)
	}
	if resort == nil {
		return nil, ErrNotFound
	}

	detail := response.ResortToDetailResponse(resort)
	return &detail, nil
}

func (s *resortService) CreateResort(ctx context.Context, req *request.ResortRequest) (*response.ResortDetailResponse, error) {
	// Validation is identical for create and update
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create resort validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	resort := &entity.Resort{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyResortRequest(resort, req)

	if err := s.repo.Resort.Create(ctx, resort); err != nil {
		s.log.Error("Failed to create resort",
			zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create resort: %w", err)
	}

	s.log.Info("Resort created",
		zap.String("resort_id", resort.ID.String()),
		zap.String("title", resort.Title))

	detail := response.ResortToDetailResponse(resort)
	return &detail, nil
}

func (s *resortService) UpdateResort(ctx context.Context, resortID string, req *request.ResortRequest) (*response.ResortDetailResponse, error) {
	id, err := uuid.Parse(resortID)
	if err != nil {
		s.log.Warn("Invalid resort ID format", zap.String("resort_id", resortID))
		return nil, fmt.Errorf("%w: invalid resort id", ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update resort validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	resort, err := s.repo.Resort.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find resort",
			zap.Error(err), zap.String("resort_id", resortID))
		return nil, fmt.Errorf("find resort: %w", err)
	}
	if resort == nil {
		return nil, ErrNotFound
	}

	// Keep existing images unless the update brought new ones
	if req.ImgSrc == "" {
		req.ImgSrc = resort.ImgSrc
	}
	if len(req.Photos) == 0 {
		req.Photos = resort.Photos
	}

	applyResortRequest(resort, req)
	resort.UpdatedAt = time.Now()

	if err := s.repo.Resort.Update(ctx, resort); err != nil {
		s.log.Error("Failed to update resort",
			zap.Error(err), zap.String("resort_id", resortID))
		return nil, fmt.Errorf("update resort: %w", err)
	}

	s.log.Info("Resort updated",
		zap.String("resort_id", resortID),
		zap.String("title", resort.Title))

	detail := response.ResortToDetailResponse(resort)
	return &detail, nil
}

func (s *resortService) DeleteResort(ctx context.Context, resortID string) error {
	id, err := uuid.Parse(resortID)
	if err != nil {
		s.log.Warn("Invalid resort ID format", zap.String("resort_id", resortID))
		return fmt.Errorf("%w: invalid resort id", ErrValidation)
	}

	resort, err := s.repo.Resort.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find resort for delete",
			zap.Error(err), zap.String("resort_id", resortID))
		return fmt.Errorf("find resort: %w", err)
	}
	if resort == nil {
		return ErrNotFound
	}

	if err := s.repo.Resort.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete resort",
			zap.Error(err), zap.String("resort_id", resortID))
		return fmt.Errorf("delete resort: %w", err)
	}

	return nil
}

// applyResortRequest copies a validated payload onto the entity.
// List fields default to empty, not null.
func applyResortRequest(resort *entity.Resort, req *request.ResortRequest) {
	resort.Title = req.Title
	resort.Location = req.Location
	resort.Price = *req.Price
	resort.Rating = *req.Rating
	resort.ShortDescription = req.ShortDescription
	resort.MapLink = req.MapLink
	resort.VlogLink = req.VlogLink
	resort.ImgSrc = req.ImgSrc

	resort.Photos = req.Photos
	if resort.Photos == nil {
		resort.Photos = []string{}
	}
	resort.Amenities = req.Amenities
	if resort.Amenities == nil {
		resort.Amenities = []string{}
	}
	resort.Description = req.Description
	if resort.Description == nil {
		resort.Description = []string{}
	}
	resort.NearbyAttractions = req.NearbyAttractions
	if resort.NearbyAttractions == nil {
		resort.NearbyAttractions = []string{}
	}

	resort.Packages = make([]entity.TravelPackage, len(req.Packages))
	for i, pkg := range req.Packages {
		resort.Packages[i] = entity.TravelPackage{
			Name:        pkg.Name,
			Description: pkg.Description,
			Price:       pkg.Price,
			Duration:    pkg.Duration,
			Highlights:  pkg.Highlights,
			Inclusions:  pkg.Inclusions,
		}
	}
}
