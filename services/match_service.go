package services

import (
	"context"

	"uwc_connect_server/models"
)

// MatchService answers the read-side questions about matches and likes:
// who a user has matched with, and who has liked them but not matched yet.
type MatchService struct {
	Directory *UserDirectory
	Likes     *LikeService
	Profiles  *ProfileService
}

// GetCurrentMatches returns the profiles of everyone the user has matched
// with. Matches whose account has since been deleted, or who never
// finished profile setup, are skipped.
func (s *MatchService) GetCurrentMatches(ctx context.Context, email string) ([]models.ProfileView, error) {
	u, ok := s.Directory.FindByEmail(email)
	if !ok {
		return nil, ErrUnknownUser
	}

	matched := []models.ProfileView{}
	for _, matchEmail := range u.Matches {
		view, err := s.Profiles.GetProfile(ctx, matchEmail)
		if err != nil {
			continue
		}
		matched = append(matched, view)
	}
	return matched, nil
}

// GetNewLikes returns the profiles of users who liked the given user and
// are not matched with them yet.
func (s *MatchService) GetNewLikes(ctx context.Context, email string) ([]models.ProfileView, error) {
	u, ok := s.Directory.FindByEmail(email)
	if !ok {
		return nil, ErrUnknownUser
	}

	matched := make(map[string]bool, len(u.Matches))
	for _, m := range u.Matches {
		matched[m] = true
	}

	likers := []models.ProfileView{}
	for _, like := range s.Likes.LikesReceivedBy(email) {
		if matched[like.FromEmail] {
			continue
		}
		view, err := s.Profiles.GetProfile(ctx, like.FromEmail)
		if err != nil {
			continue
		}
		likers = append(likers, view)
	}
	return likers, nil
}
