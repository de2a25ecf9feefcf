package services

import (
	"context"
	"testing"

	"uwc_connect_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchFixture(t *testing.T, emails ...string) (*UserDirectory, *LikeService, *ProfileService, *MatchService) {
	t.Helper()
	d, likes, _, profiles := newProfileFixture(t, emails...)
	return d, likes, profiles, &MatchService{Directory: d, Likes: likes, Profiles: profiles}
}

func TestGetCurrentMatches(t *testing.T) {
	_, likes, profiles, matches := newMatchFixture(t, "a@uwc.ac.za", "b@uwc.ac.za")

	_, err := profiles.SetupProfile(context.Background(), "b@uwc.ac.za", models.Profile{Name: "B"}, nil)
	require.NoError(t, err)

	_, err = likes.RecordLike("a@uwc.ac.za", "b@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("b@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)

	views, err := matches.GetCurrentMatches(context.Background(), "a@uwc.ac.za")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "b@uwc.ac.za", views[0].Email)
	assert.Equal(t, "B", views[0].Name)
}

func TestGetCurrentMatches_SkipsDeletedAccounts(t *testing.T) {
	_, likes, profiles, matches := newMatchFixture(t, "a@uwc.ac.za", "b@uwc.ac.za")

	_, err := profiles.SetupProfile(context.Background(), "b@uwc.ac.za", models.Profile{Name: "B"}, nil)
	require.NoError(t, err)
	_, err = likes.RecordLike("a@uwc.ac.za", "b@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("b@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)

	require.NoError(t, profiles.DeleteAccount(context.Background(), "b@uwc.ac.za", ""))

	// a still carries the dangling match entry; the projection hides it.
	views, err := matches.GetCurrentMatches(context.Background(), "a@uwc.ac.za")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetCurrentMatches_UnknownUser(t *testing.T) {
	_, _, _, matches := newMatchFixture(t)
	_, err := matches.GetCurrentMatches(context.Background(), "ghost@uwc.ac.za")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestGetNewLikes_ExcludesMatchedSenders(t *testing.T) {
	_, likes, profiles, matches := newMatchFixture(t, "a@uwc.ac.za", "b@uwc.ac.za", "c@uwc.ac.za")

	for _, email := range []string{"b@uwc.ac.za", "c@uwc.ac.za"} {
		_, err := profiles.SetupProfile(context.Background(), email, models.Profile{Name: email}, nil)
		require.NoError(t, err)
	}

	// b and c both like a; a likes b back, so only c remains a "new like".
	_, err := likes.RecordLike("b@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("c@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("a@uwc.ac.za", "b@uwc.ac.za")
	require.NoError(t, err)

	views, err := matches.GetNewLikes(context.Background(), "a@uwc.ac.za")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "c@uwc.ac.za", views[0].Email)
}
