package dto

type RegisterRequest struct {
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Bio          string  `json:"bio"`
	SportType    string  `json:"sport_type"`
	AvgDistance  float64 `json:"avg_distance"`
	LastLat      float64 `json:"last_lat"`
	LastLng      float64 `json:"last_lng"`
	Availability string  `json:"availability"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
