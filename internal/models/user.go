package models

// UserProfile is the public projection of the users table written by the identity service.
type UserProfile struct {
	UserID            string `db:"user_id"`
	UserName          string `db:"user_name"`
	ProfilePictureURL string `db:"profile_picture_url"`
}
