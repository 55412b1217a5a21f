// Package notification delivers booking confirmations over email and
// WhatsApp. Dispatch is fire-and-forget: failures are logged and never
// surface to the booking flow.
package notification

import (
	"context"
	"log"

	"ezpickup-backend/config"
	"ezpickup-backend/internal/model"
	"ezpickup-backend/internal/store"
)

// WorkerPool manages a pool of workers for sending notifications.
type WorkerPool struct {
	size     int
	jobs     chan string
	store    store.Store
	cfg      config.NotificationConfig
	email    EmailSender
	whatsapp WhatsAppSender
}

// NewWorkerPool creates a new worker pool with the default senders.
func NewWorkerPool(size int, s store.Store, cfg config.NotificationConfig) *WorkerPool {
	return &WorkerPool{
		size:     size,
		jobs:     make(chan string, size),
		store:    s,
		cfg:      cfg,
		email:    NewSMTPSender(cfg.SMTP),
		whatsapp: NewWhatsAppClient(cfg.WhatsApp),
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("notification worker %d started", id)
	for {
		select {
		case bookingID := <-wp.jobs:
			wp.notifyBooking(ctx, bookingID)
		case <-ctx.Done():
			log.Printf("notification worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a committed booking for notification. Never blocks the
// caller: if the queue is full the job is dropped and logged.
func (wp *WorkerPool) Dispatch(bookingID string) {
	select {
	case wp.jobs <- bookingID:
	default:
		log.Printf("notification queue full, dropping job for booking %s", bookingID)
	}
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// notifyBooking sends every configured channel for one booking. Each channel
// fails independently; a channel failure only logs.
func (wp *WorkerPool) notifyBooking(ctx context.Context, bookingID string) {
	b, err := wp.store.GetBookingByID(ctx, bookingID)
	if err != nil {
		log.Printf("notification: failed to load booking %s: %v", bookingID, err)
		return
	}

	wp.sendEmails(b)
	wp.sendWhatsApp(ctx, b)
}

func (wp *WorkerPool) sendEmails(b model.Booking) {
	if b.Email != nil {
		msg := CustomerEmail(b, wp.cfg.SiteURL)
		if err := wp.email.Send(*b.Email, msg.Subject, msg.HTMLBody); err != nil {
			log.Printf("notification: customer email for %s failed: %v", b.ReferenceCode, err)
		}
	}

	if wp.cfg.AdminEmail != "" {
		msg := AdminEmail(b)
		if err := wp.email.Send(wp.cfg.AdminEmail, msg.Subject, msg.HTMLBody); err != nil {
			log.Printf("notification: admin email for %s failed: %v", b.ReferenceCode, err)
		}
	}
}

func (wp *WorkerPool) sendWhatsApp(ctx context.Context, b model.Booking) {
	if err := wp.whatsapp.Send(ctx, b.ContactNumber, CustomerWhatsApp(b, wp.cfg.SiteURL)); err != nil {
		log.Printf("notification: customer whatsapp for %s failed: %v", b.ReferenceCode, err)
	}

	if wp.cfg.AdminPhone != "" {
		if err := wp.whatsapp.Send(ctx, wp.cfg.AdminPhone, AdminWhatsApp(b, wp.cfg.SiteURL)); err != nil {
			log.Printf("notification: admin whatsapp for %s failed: %v", b.ReferenceCode, err)
		}
	}
}
