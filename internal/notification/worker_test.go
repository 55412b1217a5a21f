package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ezpickup-backend/config"
	"ezpickup-backend/internal/db"
	"ezpickup-backend/internal/model"
	"ezpickup-backend/internal/store"
)

// mockEmailSender records sent emails.
type mockEmailSender struct {
	mu    sync.Mutex
	sent  []string // "to|subject"
	fail  bool
	wg    *sync.WaitGroup
}

func (m *mockEmailSender) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	m.sent = append(m.sent, to+"|"+subject)
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	return nil
}

// mockWhatsAppSender records sent messages.
type mockWhatsAppSender struct {
	mu   sync.Mutex
	sent map[string]string // phone -> message
	wg   *sync.WaitGroup
}

func (m *mockWhatsAppSender) Send(_ context.Context, phone, message string) error {
	m.mu.Lock()
	if m.sent == nil {
		m.sent = make(map[string]string)
	}
	m.sent[phone] = message
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
	return nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))
	return store.NewGormStore(gormDB)
}

func seedBooking(t *testing.T, s store.Store) model.Booking {
	t.Helper()

	city := model.City{Name: "Pune", State: "Maharashtra", IsActive: true}
	require.NoError(t, s.DB().Create(&city).Error)
	category := model.Category{Name: "Mobile Phones", Slug: "mobile-phones", IsActive: true}
	require.NoError(t, s.DB().Create(&category).Error)
	device := model.Device{Name: "Smartphones", Slug: "smartphones", CategoryID: category.ID, IsActive: true}
	require.NoError(t, s.DB().Create(&device).Error)
	brand := model.Brand{Name: "Samsung", Slug: "samsung-mobile", DeviceID: device.ID, IsActive: true}
	require.NoError(t, s.DB().Create(&brand).Error)
	m := model.Model{Name: "Galaxy S24", Slug: "galaxy-s24", BrandID: brand.ID, IsActive: true}
	require.NoError(t, s.DB().Create(&m).Error)
	condition := model.Condition{Name: "Good", Multiplier: 0.8, IsActive: true}
	require.NoError(t, s.DB().Create(&condition).Error)

	email := "priya@example.com"
	b := model.Booking{
		ReferenceCode:     "EZE-TEST",
		CustomerName:      "Priya Sharma",
		ContactNumber:     "9123456780",
		Email:             &email,
		Address:           "12 MG Road, Pune",
		Pincode:           "411001",
		CityID:            city.ID,
		ModelID:           m.ID,
		ConditionID:       condition.ID,
		EstimatedPrice:    60000,
		PickupDate:        time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		PreferredTimeSlot: "10:00 AM - 12:00 PM",
	}
	require.NoError(t, s.CreateBooking(context.Background(), &b))
	return b
}

func testNotificationConfig() config.NotificationConfig {
	return config.NotificationConfig{
		SiteURL:    "https://ezpickup.test",
		AdminEmail: "admin@ezpickup.test",
		AdminPhone: "919999999999",
	}
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, newTestStore(t), testNotificationConfig())

	wp.Dispatch("booking-1")

	select {
	case job := <-wp.Jobs():
		assert.Equal(t, "booking-1", job)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DropsWhenQueueFull(t *testing.T) {
	// Workers are not started, so the buffered channel fills up.
	wp := NewWorkerPool(1, newTestStore(t), testNotificationConfig())

	wp.Dispatch("job-1")

	done := make(chan struct{})
	go func() {
		wp.Dispatch("job-2") // must not block
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	assert.Len(t, wp.Jobs(), 1)
}

func TestWorkerPool_SendsAllChannels(t *testing.T) {
	s := newTestStore(t)
	b := seedBooking(t, s)

	var wg sync.WaitGroup
	wg.Add(4) // customer+admin email, customer+admin whatsapp

	email := &mockEmailSender{wg: &wg}
	whatsapp := &mockWhatsAppSender{wg: &wg}

	wp := NewWorkerPool(1, s, testNotificationConfig())
	wp.email = email
	wp.whatsapp = whatsapp

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(b.ID)
	wg.Wait()

	assert.Contains(t, email.sent, "priya@example.com|Booking Confirmed - EZE-TEST")
	assert.Contains(t, email.sent, "admin@ezpickup.test|New Pickup Booking - EZE-TEST")

	customerMsg := whatsapp.sent["9123456780"]
	assert.Contains(t, customerMsg, "EZE-TEST")
	assert.Contains(t, customerMsg, "Samsung Galaxy S24")
	assert.Contains(t, customerMsg, "https://ezpickup.test/track/EZE-TEST")

	adminMsg := whatsapp.sent["919999999999"]
	assert.Contains(t, adminMsg, "Priya Sharma")
	assert.Contains(t, adminMsg, "https://ezpickup.test/admin")
}

func TestWorkerPool_EmailFailureDoesNotStopWhatsApp(t *testing.T) {
	s := newTestStore(t)
	b := seedBooking(t, s)

	var wg sync.WaitGroup
	wg.Add(2) // both whatsapp sends still happen

	email := &mockEmailSender{fail: true}
	whatsapp := &mockWhatsAppSender{wg: &wg}

	wp := NewWorkerPool(1, s, testNotificationConfig())
	wp.email = email
	wp.whatsapp = whatsapp

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(b.ID)
	wg.Wait()

	assert.Len(t, whatsapp.sent, 2)
}

func TestCustomerEmail_Content(t *testing.T) {
	s := newTestStore(t)
	b := seedBooking(t, s)

	loaded, err := s.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)

	msg := CustomerEmail(loaded, "https://ezpickup.test")
	assert.Equal(t, "Booking Confirmed - EZE-TEST", msg.Subject)
	assert.True(t, strings.Contains(msg.HTMLBody, "Samsung Galaxy S24"))
	assert.True(t, strings.Contains(msg.HTMLBody, "https://ezpickup.test/track/EZE-TEST"))
	assert.True(t, strings.Contains(msg.HTMLBody, "Pune"))
}
