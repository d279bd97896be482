package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripbuddy/entities"
	"tripbuddy/pkg/plan/types"
)

type Service interface {
	Create(in *entities.Booking) error
	ListByTrip(tripID uint) ([]entities.Booking, error)
	UpdatePartial(id uint, patch BookingPatch) (*entities.Booking, error)

	// CreateForPlan materializes one pending booking per bookable component
	// of an optimized selection.
	CreateForPlan(tripID, planID uint, sel *types.OptimizationResult) ([]entities.Booking, error)
}

type BookingPatch struct {
	Status *string  `json:"status"`
	Price  *float64 `json:"price"`
	URL    *string  `json:"url"`
	Notes  *string  `json:"notes"`
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Create(in *entities.Booking) error {
	if in == nil {
		return errors.New("nil booking")
	}
	if in.Status == "" {
		in.Status = "pending"
	}
	if in.Reference == "" {
		in.Reference = newReference(in.Kind)
	}
	return s.db.Create(in).Error
}

func (s *service) ListByTrip(tripID uint) ([]entities.Booking, error) {
	var out []entities.Booking
	if err := s.db.Where("trip_id = ?", tripID).Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) UpdatePartial(id uint, patch BookingPatch) (*entities.Booking, error) {
	var b entities.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	if patch.Status != nil {
		switch *patch.Status {
		case "pending", "confirmed", "cancelled":
			b.Status = *patch.Status
		default:
			return nil, fmt.Errorf("unknown status %q", *patch.Status)
		}
	}
	if patch.Price != nil {
		b.Price = *patch.Price
	}
	if patch.URL != nil {
		b.URL = *patch.URL
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if err := s.db.Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) CreateForPlan(tripID, planID uint, sel *types.OptimizationResult) ([]entities.Booking, error) {
	if sel == nil {
		return nil, nil
	}
	var out []entities.Booking
	if f := sel.Flight; f != nil {
		out = append(out, entities.Booking{
			TripID: tripID, PlanID: planID, Kind: "flight",
			Name: f.Airline, Price: f.Price, ExternalID: f.BookingToken,
		})
	}
	if h := sel.Hotel; h != nil {
		out = append(out, entities.Booking{
			TripID: tripID, PlanID: planID, Kind: "hotel",
			Name: h.Name, Price: h.TotalCost, ExternalID: h.HotelID, URL: h.BookingURL,
		})
	}
	for _, a := range sel.Activities {
		out = append(out, entities.Booking{
			TripID: tripID, PlanID: planID, Kind: "activity",
			Name: a.Name, Price: a.Price, ExternalID: a.ActivityID, URL: a.Website,
		})
	}
	for i := range out {
		if err := s.Create(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func newReference(kind string) string {
	prefix := "BK"
	if kind != "" {
		prefix = strings.ToUpper(kind[:1]) + "K"
	}
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + id[:10]
}
