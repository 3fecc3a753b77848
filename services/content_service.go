package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"perfume-shop/database"
	"perfume-shop/models"
)

var ErrInvalidInput = errors.New("invalid input")

type TestimonialLister interface {
	FindAll(ctx context.Context) ([]models.Testimonial, error)
}

type TestimonialService struct {
	testimonials TestimonialLister
}

func NewTestimonialService(testimonials TestimonialLister) *TestimonialService {
	return &TestimonialService{testimonials: testimonials}
}

// ListTestimonials degrades to an empty list when no store is configured.
func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	list, err := s.testimonials.FindAll(ctx)
	if errors.Is(err, database.ErrStoreUnavailable) {
		return []models.Testimonial{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return list, nil
}

type SubscriberWriter interface {
	Create(ctx context.Context, sub models.Subscriber) error
}

type WelcomeMailer interface {
	SendWelcomeEmail(toEmail string) error
}

type SubscriberService struct {
	subscribers SubscriberWriter
	mailer      WelcomeMailer
	logger      *slog.Logger
	wg          sync.WaitGroup
}

// NewSubscriberService returns the signup service. mailer may be nil, in which
// case no welcome email is sent.
func NewSubscriberService(subscribers SubscriberWriter, mailer WelcomeMailer, logger *slog.Logger) *SubscriberService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriberService{
		subscribers: subscribers,
		mailer:      mailer,
		logger:      logger,
	}
}

func (s *SubscriberService) Subscribe(ctx context.Context, req models.SubscribeRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	sub := models.Subscriber{Email: email, TaggedSource: req.TaggedSource}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}

	if s.mailer != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.mailer.SendWelcomeEmail(email); err != nil {
				s.logger.Warn("welcome email failed", "email", email, "error", err)
			}
		}()
	}
	return nil
}

// Wait blocks until pending welcome emails have been attempted.
func (s *SubscriberService) Wait() {
	s.wg.Wait()
}
