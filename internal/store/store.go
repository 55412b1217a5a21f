package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ezpickup-backend/internal/apperr"
	"ezpickup-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Catalog / pricing reads
	GetModelWithAncestry(ctx context.Context, id string) (model.Model, error)
	GetCondition(ctx context.Context, id string) (model.Condition, error)
	ListMatchingPricingRules(ctx context.Context, m model.Model) ([]model.PricingRule, error)

	// Bookings
	CreateBooking(ctx context.Context, b *model.Booking) error
	GetBookingByID(ctx context.Context, id string) (model.Booking, error)
	GetBookingByReferenceCode(ctx context.Context, code string) (model.Booking, error)

	// Form reference data
	ListActiveCities(ctx context.Context) ([]model.City, error)
	ListActiveConditions(ctx context.Context) ([]model.Condition, error)
	ListCatalogTree(ctx context.Context) ([]model.Category, error)

	// Content
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	ListBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, error)
	GetStats(ctx context.Context) (model.Stats, error)

	// Admin
	GetAdminStats(ctx context.Context) (AdminStats, error)
	ListRecentBookings(ctx context.Context, limit int) ([]model.Booking, error)
	UpdateBooking(ctx context.Context, id string, status model.BookingStatus, finalPrice *int64) (model.Booking, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// mapErr translates GORM errors into the service error taxonomy.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case isDuplicateErr(err):
		return apperr.ErrDuplicateCode
	default:
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
}

// isDuplicateErr recognizes unique-constraint violations across drivers.
// The postgres driver translates them to gorm.ErrDuplicatedKey; the sqlite
// driver used in tests reports them only through the error message.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func (s *gormStore) GetModelWithAncestry(ctx context.Context, id string) (model.Model, error) {
	var m model.Model
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Brand.Device").
		Preload("Brand.Device.Category").
		First(&m, "id = ?", id).Error
	if err != nil {
		return model.Model{}, mapErr(err)
	}
	return m, nil
}

func (s *gormStore) GetCondition(ctx context.Context, id string) (model.Condition, error) {
	var c model.Condition
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return model.Condition{}, mapErr(err)
	}
	return c, nil
}

// ListMatchingPricingRules returns every active rule whose scope matches the
// model's ancestry, plus the unscoped global default. The caller ranks them;
// no ordering is relied on here.
func (s *gormStore) ListMatchingPricingRules(ctx context.Context, m model.Model) ([]model.PricingRule, error) {
	var rules []model.PricingRule
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			s.db.Where("model_id = ?", m.ID).
				Or("brand_id = ?", m.BrandID).
				Or("device_id = ?", m.Brand.DeviceID).
				Or("category_id = ?", m.Brand.Device.CategoryID).
				Or("model_id IS NULL AND brand_id IS NULL AND device_id IS NULL AND category_id IS NULL"),
		).
		Find(&rules).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return rules, nil
}

// CreateBooking inserts the booking. A reference code collision surfaces as
// apperr.ErrDuplicateCode via the unique index, never via a pre-check.
func (s *gormStore) CreateBooking(ctx context.Context, b *model.Booking) error {
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *gormStore) GetBookingByID(ctx context.Context, id string) (model.Booking, error) {
	return s.findBooking(ctx, "id = ?", id)
}

func (s *gormStore) GetBookingByReferenceCode(ctx context.Context, code string) (model.Booking, error) {
	return s.findBooking(ctx, "reference_code = ?", strings.ToUpper(strings.TrimSpace(code)))
}

// bookingRelations preloads everything a booking response renders.
func bookingRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("City").
		Preload("Model").
		Preload("Model.Brand").
		Preload("Model.Brand.Device").
		Preload("Model.Brand.Device.Category").
		Preload("Variant").
		Preload("Condition")
}

func (s *gormStore) findBooking(ctx context.Context, query string, arg string) (model.Booking, error) {
	var b model.Booking
	err := bookingRelations(s.db.WithContext(ctx)).
		First(&b, query, arg).Error
	if err != nil {
		return model.Booking{}, mapErr(err)
	}
	return b, nil
}

func (s *gormStore) ListActiveCities(ctx context.Context) ([]model.City, error) {
	var cities []model.City
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&cities).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return cities, nil
}

func (s *gormStore) ListActiveConditions(ctx context.Context) ([]model.Condition, error) {
	var conditions []model.Condition
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&conditions).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return conditions, nil
}

// ListCatalogTree loads the full active hierarchy for the booking form.
func (s *gormStore) ListCatalogTree(ctx context.Context) ([]model.Category, error) {
	active := func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}

	var categories []model.Category
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Devices", active).
		Preload("Devices.Brands", active).
		Preload("Devices.Brands.Models", active).
		Preload("Devices.Brands.Models.Variants", active).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return categories, nil
}

func (s *gormStore) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return testimonials, nil
}

func (s *gormStore) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return posts, nil
}

func (s *gormStore) GetBlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	var post model.BlogPost
	err := s.db.WithContext(ctx).
		First(&post, "slug = ? AND is_published = ?", slug, true).Error
	if err != nil {
		return model.BlogPost{}, mapErr(err)
	}
	return post, nil
}

func (s *gormStore) GetStats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := s.db.WithContext(ctx).First(&stats).Error; err != nil {
		return model.Stats{}, mapErr(err)
	}
	return stats, nil
}

func (s *gormStore) GetAdminStats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats

	if err := s.db.WithContext(ctx).Model(&model.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return AdminStats{}, mapErr(err)
	}

	err := s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("status = ?", model.StatusPending).
		Count(&stats.PendingBookings).Error
	if err != nil {
		return AdminStats{}, mapErr(err)
	}

	err = s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("status = ?", model.StatusCompleted).
		Count(&stats.CompletedBookings).Error
	if err != nil {
		return AdminStats{}, mapErr(err)
	}

	err = s.db.WithContext(ctx).Model(&model.Booking{}).
		Select("COALESCE(SUM(final_price), 0)").
		Where("status = ?", model.StatusCompleted).
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return AdminStats{}, mapErr(err)
	}

	return stats, nil
}

func (s *gormStore) ListRecentBookings(ctx context.Context, limit int) ([]model.Booking, error) {
	var bookings []model.Booking
	err := bookingRelations(s.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return bookings, nil
}

// UpdateBooking applies a back-office status/final-price change and returns
// the updated record.
func (s *gormStore) UpdateBooking(ctx context.Context, id string, status model.BookingStatus, finalPrice *int64) (model.Booking, error) {
	updates := map[string]any{"status": status}
	if finalPrice != nil {
		updates["final_price"] = *finalPrice
	}

	res := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return model.Booking{}, mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Booking{}, apperr.ErrNotFound
	}

	return s.GetBookingByID(ctx, id)
}
