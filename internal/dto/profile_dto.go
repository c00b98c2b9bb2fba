package dto

type UpdateProfileRequest struct {
	Name         *string  `json:"name"`
	Age          *int     `json:"age"`
	Bio          *string  `json:"bio"`
	SportType    *string  `json:"sport_type"`
	AvgDistance  *float64 `json:"avg_distance"`
	LastLat      *float64 `json:"last_lat"`
	LastLng      *float64 `json:"last_lng"`
	Availability *string  `json:"availability"`
}

type PreferencesRequest struct {
	PreferredSportType *string `json:"preferred_sport_type"`
	PreferredMinAge    *int    `json:"preferred_min_age"`
	PreferredMaxAge    *int    `json:"preferred_max_age"`
}

type PhotoMeta struct {
	ID           uint   `json:"id"`
	PhotoURL     string `json:"photo_url"`
	IsProfilePic bool   `json:"is_profile_pic"`
}

type AddPhotoRequest struct {
	PhotoURL     string `json:"photo_url"`
	IsProfilePic bool   `json:"is_profile_pic"`
}

type ProfileResponse struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Age          int         `json:"age"`
	Bio          string      `json:"bio"`
	SportType    string      `json:"sport_type"`
	AvgDistance  float64     `json:"avg_distance"`
	Lat          float64     `json:"lat"`
	Lng          float64     `json:"lng"`
	Photos       []string    `json:"photos"`
	PhotosMeta   []PhotoMeta `json:"photos_meta"`
	StravaYTDURL *string     `json:"strava_ytd_url,omitempty"`
}
