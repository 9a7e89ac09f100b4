package model

// GoogleUserInfo holds the fields read from the Google userinfo endpoint
type GoogleUserInfo struct {
	GID        string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// AccessToken struct holds the access token data
type AccessToken struct {
	Token string `json:"token"`
}

// LoginResponse struct holds the response data for user login or registration
type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
