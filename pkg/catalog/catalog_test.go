package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/tmdb"
	tmdbMocks "github.com/kasuboski/serialz/pkg/tmdb/mocks"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTMDB_Search(t *testing.T) {
	t.Run("bounds results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		results := make([]tmdb.SearchTvResult, 0, 8)
		for i := range 8 {
			results = append(results, tmdb.SearchTvResult{ID: int32(i + 1), Name: "Foo", FirstAirDate: ptr("2020-01-05")})
		}
		client.EXPECT().SearchSeries(gomock.Any(), "Foo").Return(&tmdb.SearchTvResponse{Results: results}, nil)

		got := New(client).Search(context.Background(), "  Foo ")
		require.Len(t, got, DefaultSearchLimit)
		assert.Equal(t, int32(1), got[0].ID)
		require.NotNil(t, got[0].Year)
		assert.Equal(t, int32(2020), *got[0].Year)
	})

	t.Run("configured limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		results := []tmdb.SearchTvResult{{ID: 1, Name: "Foo", Overview: "A foo."}, {ID: 2, Name: "Foo"}, {ID: 3, Name: "Foo"}}
		client.EXPECT().SearchSeries(gomock.Any(), "Foo").Return(&tmdb.SearchTvResponse{Results: results}, nil).Times(2)

		got := New(client, WithSearchLimit(2)).Search(context.Background(), "Foo")
		require.Len(t, got, 2)
		assert.Equal(t, "A foo.", got[0].Overview)

		assert.Len(t, New(client, WithSearchLimit(0)).Search(context.Background(), "Foo"), 3)
	})

	t.Run("missing or malformed air date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		client.EXPECT().SearchSeries(gomock.Any(), "Bar").Return(&tmdb.SearchTvResponse{Results: []tmdb.SearchTvResult{
			{ID: 1, Name: "Bar"},
			{ID: 2, Name: "Bar", FirstAirDate: ptr("")},
			{ID: 3, Name: "Bar", FirstAirDate: ptr("soon")},
		}}, nil)

		got := New(client).Search(context.Background(), "Bar")
		require.Len(t, got, 3)
		for _, r := range got {
			assert.Nil(t, r.Year)
		}
	})

	t.Run("error degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)
		client.EXPECT().SearchSeries(gomock.Any(), "Foo").Return(nil, errors.New("boom"))

		assert.Empty(t, New(client).Search(context.Background(), "Foo"))
	})

	t.Run("blank title skips the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		assert.Empty(t, New(client).Search(context.Background(), "   "))
	})
}

func TestTMDB_Details(t *testing.T) {
	t.Run("skips specials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(42)).Return(&tmdb.SeriesDetailsResponse{
			ID:           42,
			Name:         "Foo",
			FirstAirDate: ptr("2020-03-01"),
			Status:       ptr("Returning Series"),
			Seasons: nullable.NewNullableWithValue([]tmdb.SeasonEntry{
				{SeasonNumber: 0, Name: "Specials"},
				{SeasonNumber: 1, Name: "Season 1", EpisodeCount: 8, AirDate: ptr("2020-03-01")},
				{SeasonNumber: 2, Name: "Season 2", EpisodeCount: 10},
			}),
		}, nil)

		got, ok := New(client).Details(context.Background(), 42)
		require.True(t, ok)
		assert.Equal(t, "Foo", got.Name)
		assert.Equal(t, int32(2020), *got.Year)
		assert.Equal(t, int32(2), got.TotalSeasons)
		assert.Equal(t, "Returning Series", got.Status)
		require.Len(t, got.Seasons, 2)
		assert.Equal(t, []int32{1, 2}, got.SeasonNumbers())
		assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), *got.Seasons[0].AirDate)
		assert.Nil(t, got.Seasons[1].AirDate)
	})

	t.Run("absent seasons uses number of seasons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(7)).Return(&tmdb.SeriesDetailsResponse{
			ID:              7,
			Name:            "Bar",
			NumberOfSeasons: ptr(int32(3)),
		}, nil)

		got, ok := New(client).Details(context.Background(), 7)
		require.True(t, ok)
		assert.Nil(t, got.Seasons)
		assert.Equal(t, []int32{1, 2, 3}, got.SeasonNumbers())
	})

	t.Run("error degrades to absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)
		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(7)).Return(nil, errors.New("not found"))

		got, ok := New(client).Details(context.Background(), 7)
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

func TestTMDB_Season(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := tmdbMocks.NewMockITmdb(ctrl)

	client.EXPECT().GetSeasonDetails(gomock.Any(), int32(42), int32(2)).Return(&tmdb.SeasonDetailsResponse{
		ID:           9,
		SeasonNumber: 2,
		Episodes: []tmdb.EpisodeEntry{
			{EpisodeNumber: 1, Name: "Pilot", AirDate: ptr("2021-01-01")},
			{EpisodeNumber: 2, Name: "Second"},
		},
	}, nil)
	client.EXPECT().GetSeasonDetails(gomock.Any(), int32(42), int32(3)).Return(nil, errors.New("404"))

	c := New(client)

	got, ok := c.Season(context.Background(), 42, 2)
	require.True(t, ok)
	require.Len(t, got.Episodes, 2)
	assert.Equal(t, "Pilot", got.Episodes[0].Name)
	assert.Nil(t, got.Episodes[1].AirDate)

	_, ok = c.Season(context.Background(), 42, 3)
	assert.False(t, ok)
}

func TestTMDB_CheckNewSince(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	since := now.Add(-10 * 24 * time.Hour)

	t.Run("new episode in window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(42)).Return(&tmdb.SeriesDetailsResponse{
			ID: 42,
			Seasons: nullable.NewNullableWithValue([]tmdb.SeasonEntry{
				{SeasonNumber: 0, AirDate: ptr("2024-05-18")},
				{SeasonNumber: 1, AirDate: ptr("2023-01-01")},
			}),
		}, nil)
		client.EXPECT().GetSeasonDetails(gomock.Any(), int32(42), int32(1)).Return(&tmdb.SeasonDetailsResponse{
			ID: 1,
			Episodes: []tmdb.EpisodeEntry{
				{EpisodeNumber: 7, Name: "Old", AirDate: ptr("2024-05-01")},
				{EpisodeNumber: 8, Name: "Fresh", AirDate: ptr("2024-05-18")},
				{EpisodeNumber: 9, Name: "Upcoming", AirDate: ptr("2024-05-25")},
				{EpisodeNumber: 10, Name: "Unknown"},
			},
		}, nil)

		got, ok := New(client, WithClock(clockwork.NewFakeClockAt(now))).CheckNewSince(context.Background(), 42, since)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, NewContent{
			Kind:    ContentEpisode,
			Season:  1,
			Number:  8,
			Name:    "Fresh",
			AirDate: time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
		}, got[0])
	})

	t.Run("new season reported once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(42)).Return(&tmdb.SeriesDetailsResponse{
			ID: 42,
			Seasons: nullable.NewNullableWithValue([]tmdb.SeasonEntry{
				{SeasonNumber: 2, Name: "Season 2", AirDate: ptr("2024-05-15")},
				{SeasonNumber: 3, Name: "Season 3", AirDate: ptr("2025-01-01")},
			}),
		}, nil)

		got, ok := New(client, WithClock(clockwork.NewFakeClockAt(now))).CheckNewSince(context.Background(), 42, since)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, ContentSeason, got[0].Kind)
		assert.Equal(t, int32(2), got[0].Number)
		assert.Equal(t, "Season 2", got[0].Name)
	})

	t.Run("details failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)
		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(42)).Return(nil, errors.New("timeout"))

		got, ok := New(client).CheckNewSince(context.Background(), 42, since)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("season failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := tmdbMocks.NewMockITmdb(ctrl)

		client.EXPECT().GetSeriesDetails(gomock.Any(), int32(42)).Return(&tmdb.SeriesDetailsResponse{
			ID: 42,
			Seasons: nullable.NewNullableWithValue([]tmdb.SeasonEntry{
				{SeasonNumber: 1},
				{SeasonNumber: 2},
			}),
		}, nil)
		client.EXPECT().GetSeasonDetails(gomock.Any(), int32(42), int32(1)).Return(&tmdb.SeasonDetailsResponse{
			ID:       1,
			Episodes: []tmdb.EpisodeEntry{{EpisodeNumber: 1, Name: "New", AirDate: ptr("2024-05-19")}},
		}, nil)
		client.EXPECT().GetSeasonDetails(gomock.Any(), int32(42), int32(2)).Return(nil, errors.New("timeout"))

		got, ok := New(client, WithClock(clockwork.NewFakeClockAt(now))).CheckNewSince(context.Background(), 42, since)
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}
