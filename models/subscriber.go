package models

type Subscriber struct {
	Email        string  `json:"email"`
	TaggedSource *string `json:"tagged_source"`
}

type SubscribeRequest struct {
	Email        string  `json:"email" binding:"required"`
	TaggedSource *string `json:"tagged_source"`
}
