package services

import (
	"context"
	"log"

	"uwc_connect_server/models"
)

// ObjectStore is the slice of the photo store the profile flow needs.
// S3Service satisfies it; tests substitute a fake.
type ObjectStore interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (url, key string, err error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PhotoUpload is one photo received from the profile setup form.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ProfileService handles profile setup, profile reads with refreshed photo
// URLs, discovery, and the account-deletion cascade.
type ProfileService struct {
	Directory *UserDirectory
	Likes     *LikeService
	Photos    ObjectStore
}

// SetupProfile uploads the photos, attaches the profile to the user, and
// returns how many photos were stored. A photo that fails to upload is
// logged and skipped, never failing the whole request.
func (s *ProfileService) SetupProfile(ctx context.Context, email string, profile models.Profile, photos []PhotoUpload) (int, error) {
	if !s.Directory.Exists(email) {
		return 0, ErrUnknownUser
	}

	for _, photo := range photos {
		url, key, err := s.Photos.Upload(ctx, photo.FileName, photo.ContentType, photo.Data)
		if err != nil {
			log.Printf("Failed to upload photo %s for %s: %v", photo.FileName, email, err)
			continue
		}
		profile.Photos = append(profile.Photos, url)
		profile.PhotoKeys = append(profile.PhotoKeys, key)
	}

	if err := s.Directory.AttachProfile(email, profile); err != nil {
		return 0, err
	}
	log.Printf("Profile saved for: %s (%d photos)", email, len(profile.PhotoKeys))
	return len(profile.PhotoKeys), nil
}

// GetProfile returns one user's profile with freshly presigned photo URLs.
func (s *ProfileService) GetProfile(ctx context.Context, email string) (models.ProfileView, error) {
	u, ok := s.Directory.FindByEmail(email)
	if !ok || u.Profile == nil {
		return models.ProfileView{}, ErrProfileNotFound
	}
	return s.view(ctx, u), nil
}

// ListProfiles returns every completed profile.
func (s *ProfileService) ListProfiles(ctx context.Context) []models.ProfileView {
	out := []models.ProfileView{}
	for _, u := range s.Directory.All() {
		if u.Profile == nil {
			continue
		}
		out = append(out, s.view(ctx, u))
	}
	return out
}

// Discover returns every completed profile except the caller's own.
func (s *ProfileService) Discover(ctx context.Context, email string) ([]models.ProfileView, error) {
	if email == "" {
		return nil, ErrUnknownUser
	}
	out := []models.ProfileView{}
	for _, u := range s.Directory.All() {
		if u.Profile == nil || u.Email == email {
			continue
		}
		out = append(out, s.view(ctx, u))
	}
	return out, nil
}

// DeleteAccount removes the user, their photo objects, and their like
// events. Chat history is intentionally left behind. Deleting an email
// that is not registered is not an error.
func (s *ProfileService) DeleteAccount(ctx context.Context, email, reason string) error {
	if u, ok := s.Directory.FindByEmail(email); ok {
		if u.Profile != nil {
			for _, key := range u.Profile.PhotoKeys {
				if err := s.Photos.Delete(ctx, key); err != nil {
					log.Printf("Failed to delete photo %s for %s: %v", key, email, err)
				}
			}
		}
		if err := s.Directory.Remove(email); err != nil {
			return err
		}
	}
	s.Likes.RemoveUser(email)
	log.Printf("Account deleted for %s. Reason: %s", email, reason)
	return nil
}

// view builds the outward-facing projection of a user, re-presigning each
// stored photo key so URLs never arrive expired.
func (s *ProfileService) view(ctx context.Context, u *models.User) models.ProfileView {
	v := models.ProfileView{Email: u.Email, Profile: *u.Profile}
	for i, key := range v.PhotoKeys {
		if i >= len(v.Photos) {
			break
		}
		if url, err := s.Photos.PresignGet(ctx, key); err == nil {
			v.Photos[i] = url
		}
	}
	return v
}
