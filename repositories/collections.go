package repositories

import (
	"fmt"

	"perfume-shop/database"
)

const (
	FragranceCollection   = "fragrance"
	TestimonialCollection = "testimonial"
	SubscriberCollection  = "subscriber"
	CartCollection        = "cart"
)

func malformed(collection, id string, err error) error {
	return fmt.Errorf("%w: %s/%s: %v", database.ErrMalformedDocument, collection, id, err)
}
