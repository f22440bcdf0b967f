package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"resort-backend/internal/cache"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

type PropertyTypeService struct {
	repo *repositories.PropertyTypeRepository
}

func NewPropertyTypeService(repo *repositories.PropertyTypeRepository) *PropertyTypeService {
	return &PropertyTypeService{repo: repo}
}

// NormalizeRoomPrefix trims and uppercases the prefix so "p" and "P"
// produce the same room numbers
func NormalizeRoomPrefix(prefix string) string {
	return strings.ToUpper(strings.TrimSpace(prefix))
}

// GenerateRoomNumbers produces prefix+1 through prefix+count, e.g.
// ("A", 3) yields A1, A2, A3
func GenerateRoomNumbers(prefix string, count int) []string {
	prefix = NormalizeRoomPrefix(prefix)
	numbers := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		numbers = append(numbers, fmt.Sprintf("%s%d", prefix, i))
	}
	return numbers
}

func (s *PropertyTypeService) Create(ctx context.Context, req *models.CreatePropertyTypeRequest) (*models.PropertyType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.TotalRooms <= 0 {
		return nil, fmt.Errorf("total_rooms must be positive")
	}
	if strings.TrimSpace(req.RoomPrefix) == "" {
		return nil, fmt.Errorf("room_prefix is required")
	}
	if req.CostPerNight < 0 || req.ExtraPersonCost < 0 {
		return nil, fmt.Errorf("rates cannot be negative")
	}

	pt := &models.PropertyType{
		Name:            strings.TrimSpace(req.Name),
		TotalRooms:      req.TotalRooms,
		RoomPrefix:      NormalizeRoomPrefix(req.RoomPrefix),
		CostPerNight:    req.CostPerNight,
		ExtraPersonCost: req.ExtraPersonCost,
		CheckInTime:     req.CheckInTime,
		CheckOutTime:    req.CheckOutTime,
		MapLink:         req.MapLink,
		Rules:           req.Rules,
		WifiDetails:     req.WifiDetails,
	}

	roomNumbers := GenerateRoomNumbers(pt.RoomPrefix, pt.TotalRooms)
	if err := s.repo.CreateWithRooms(ctx, pt, roomNumbers); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PropertyTypesKey)
	log.Printf("[PropertyType] Created %q with %d rooms (prefix %s)", pt.Name, pt.TotalRooms, pt.RoomPrefix)
	return pt, nil
}

// List serves from the Redis cache when warm, falling back to Postgres
func (s *PropertyTypeService) List(ctx context.Context) ([]*models.PropertyType, error) {
	if data, ok := cache.GetCached(ctx, cache.PropertyTypesKey); ok {
		var types []*models.PropertyType
		if err := json.Unmarshal(data, &types); err == nil {
			return types, nil
		}
	}

	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(types); err == nil {
		cache.SetCached(ctx, cache.PropertyTypesKey, data, 5*time.Minute)
	}

	return types, nil
}

func (s *PropertyTypeService) Get(ctx context.Context, id int) (*models.PropertyType, error) {
	return s.repo.Get(ctx, id)
}

func (s *PropertyTypeService) Update(ctx context.Context, id int, req *models.UpdatePropertyTypeRequest) (*models.PropertyType, error) {
	pt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.CostPerNight < 0 || req.ExtraPersonCost < 0 {
		return nil, fmt.Errorf("rates cannot be negative")
	}

	pt.Name = strings.TrimSpace(req.Name)
	pt.CostPerNight = req.CostPerNight
	pt.ExtraPersonCost = req.ExtraPersonCost
	pt.CheckInTime = req.CheckInTime
	pt.CheckOutTime = req.CheckOutTime
	pt.MapLink = req.MapLink
	pt.Rules = req.Rules
	pt.WifiDetails = req.WifiDetails

	if err := s.repo.Update(ctx, pt); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PropertyTypesKey)
	return pt, nil
}

func (s *PropertyTypeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PropertyTypesKey)
	return nil
}

func (s *PropertyTypeService) ListRooms(ctx context.Context, propertyTypeID int) ([]*models.Room, error) {
	return s.repo.ListRooms(ctx, propertyTypeID)
}
