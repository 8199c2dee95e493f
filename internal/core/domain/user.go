package domain

// UserProfile is the public part of a user record owned by the identity service.
type UserProfile struct {
	UserID            string `json:"userID"`
	UserName          string `json:"userName"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}
