package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/storage"
)

var ErrPhotoNotFound = errors.New("photo not found")

// ProfileService serves and mutates profile data. The matching core never
// reads any of this beyond the user id; it exists for the client UI.
type ProfileService struct {
	store storage.Storage
}

func NewProfileService(store storage.Storage) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserMissing
		}
		return nil, err
	}

	photos, err := s.store.ListPhotos(userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		Age:         user.Age,
		Bio:         user.Bio,
		SportType:   user.SportType,
		AvgDistance: user.AvgDistance,
		Lat:         user.LastLat,
		Lng:         user.LastLng,
		Photos:      make([]string, 0, len(photos)),
		PhotosMeta:  make([]dto.PhotoMeta, 0, len(photos)),
	}
	for _, p := range photos {
		resp.Photos = append(resp.Photos, p.PhotoURL)
		resp.PhotosMeta = append(resp.PhotosMeta, dto.PhotoMeta{
			ID:           p.ID,
			PhotoURL:     p.PhotoURL,
			IsProfilePic: p.IsProfilePic,
		})
	}
	if user.StravaToken != "" {
		url := fmt.Sprintf("https://www.strava.com/athletes/%s/ytd", user.StravaToken)
		resp.StravaYTDURL = &url
	}
	return &resp, nil
}

func (s *ProfileService) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) error {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserMissing
		}
		return err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.SportType != nil {
		user.SportType = *req.SportType
	}
	if req.AvgDistance != nil {
		user.AvgDistance = *req.AvgDistance
	}
	if req.LastLat != nil {
		user.LastLat = *req.LastLat
	}
	if req.LastLng != nil {
		user.LastLng = *req.LastLng
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	return s.store.SaveUser(user)
}

func (s *ProfileService) UpdatePreferences(userID uint, req *dto.PreferencesRequest) error {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserMissing
		}
		return err
	}

	user.PreferredSportType = req.PreferredSportType
	user.PreferredMinAge = req.PreferredMinAge
	user.PreferredMaxAge = req.PreferredMaxAge
	if err := s.store.SaveUser(user); err != nil {
		return err
	}
	slog.Info("preferences updated", "user_id", userID)
	return nil
}

func (s *ProfileService) AddPhoto(userID uint, req *dto.AddPhotoRequest) (*models.UserPhoto, error) {
	if req.IsProfilePic {
		if err := s.store.ClearProfilePics(userID); err != nil {
			return nil, err
		}
	}
	photo := models.UserPhoto{
		UserID:       userID,
		PhotoURL:     req.PhotoURL,
		IsProfilePic: req.IsProfilePic,
	}
	if err := s.store.AddPhoto(&photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto removes a photo owned by the user. If it was the profile
// pic, the oldest remaining photo is promoted so the profile never ends
// up picture-less while photos exist.
func (s *ProfileService) DeletePhoto(userID, photoID uint) error {
	photo, err := s.store.FindPhoto(photoID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	wasProfile := photo.IsProfilePic

	if err := s.store.DeletePhoto(photoID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if wasProfile {
		remaining, err := s.store.ListPhotos(userID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			if err := s.store.SetProfilePic(remaining[0].ID); err != nil {
				return err
			}
			slog.Info("promoted new profile photo", "user_id", userID, "photo_id", remaining[0].ID)
		} else {
			slog.Warn("user has no profile photo left", "user_id", userID)
		}
	}
	return nil
}
