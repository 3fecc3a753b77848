package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfume-shop/database"
	"perfume-shop/models"
	"perfume-shop/repositories"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcomeEmail(toEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	return m.err
}

func TestTestimonialService_ListTestimonials(t *testing.T) {
	ctx := context.Background()

	t.Run("should list stored testimonials", func(t *testing.T) {
		store := database.NewMemoryStore()
		require.NoError(t, store.InsertMany(ctx, repositories.TestimonialCollection, []database.Document{
			{"author": "Vogue", "quote": "Unforgettable."},
		}))

		list, err := NewTestimonialService(repositories.NewTestimonialRepository(store)).ListTestimonials(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Testimonial{{Author: "Vogue", Quote: "Unforgettable."}}, list)
	})

	t.Run("should degrade to empty list without a store", func(t *testing.T) {
		svc := NewTestimonialService(repositories.NewTestimonialRepository(database.NewUnavailable(nil)))

		list, err := svc.ListTestimonials(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("should surface malformed documents", func(t *testing.T) {
		store := database.NewMemoryStore()
		_, err := store.InsertOne(ctx, repositories.TestimonialCollection, database.Document{"author": "Vogue"})
		require.NoError(t, err)

		_, err = NewTestimonialService(repositories.NewTestimonialRepository(store)).ListTestimonials(ctx)
		assert.ErrorIs(t, err, database.ErrMalformedDocument)
	})
}

func TestSubscriberService_Subscribe(t *testing.T) {
	ctx := context.Background()
	source := "hero"

	testCases := map[string]struct {
		req           models.SubscribeRequest
		mailErr       error
		expectedError error
		expectedSent  []string
	}{
		"should store subscriber and send welcome email": {
			req:          models.SubscribeRequest{Email: " a@b.c ", TaggedSource: &source},
			expectedSent: []string{"a@b.c"},
		},
		"should ignore mail failures": {
			req:          models.SubscribeRequest{Email: "a@b.c"},
			mailErr:      errors.New("smtp down"),
			expectedSent: []string{"a@b.c"},
		},
		"should reject blank email": {
			req:           models.SubscribeRequest{Email: "  "},
			expectedError: ErrInvalidInput,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			store := database.NewMemoryStore()
			mailer := &recordingMailer{err: tc.mailErr}
			svc := NewSubscriberService(repositories.NewSubscriberRepository(store), mailer, nil)

			err := svc.Subscribe(ctx, tc.req)
			svc.Wait()

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, mailer.sent)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedSent, mailer.sent)

			n, err := store.Count(ctx, repositories.SubscriberCollection, database.Filter{"email": "a@b.c"})
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestSubscriberService_WithoutMailer(t *testing.T) {
	svc := NewSubscriberService(repositories.NewSubscriberRepository(database.NewMemoryStore()), nil, nil)
	assert.NoError(t, svc.Subscribe(context.Background(), models.SubscribeRequest{Email: "a@b.c"}))
}

func TestSubscriberService_StoreUnavailable(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewSubscriberService(repositories.NewSubscriberRepository(database.NewUnavailable(nil)), mailer, nil)

	err := svc.Subscribe(context.Background(), models.SubscribeRequest{Email: "a@b.c"})
	svc.Wait()
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
	assert.Empty(t, mailer.sent)
}
