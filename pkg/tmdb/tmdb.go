package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oapi-codegen/nullable"
)

// ITmdb is the parsed view of the endpoints used to track series
type ITmdb interface {
	SearchSeries(ctx context.Context, query string) (*SearchTvResponse, error)
	GetSeriesDetails(ctx context.Context, seriesID int32) (*SeriesDetailsResponse, error)
	GetSeasonDetails(ctx context.Context, seriesID int32, seasonNumber int32) (*SeasonDetailsResponse, error)
}

type SearchTvResponse struct {
	Page         int32            `json:"page"`
	Results      []SearchTvResult `json:"results"`
	TotalPages   int32            `json:"total_pages"`
	TotalResults int32            `json:"total_results"`
}

type SearchTvResult struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	FirstAirDate *string `json:"first_air_date,omitempty"`
	Overview     string  `json:"overview"`
}

type SeriesDetailsResponse struct {
	ID               int32                            `json:"id"`
	Name             string                           `json:"name"`
	FirstAirDate     *string                          `json:"first_air_date,omitempty"`
	LastAirDate      *string                          `json:"last_air_date,omitempty"`
	NumberOfSeasons  *int32                           `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes *int32                           `json:"number_of_episodes,omitempty"`
	Status           *string                          `json:"status,omitempty"`
	InProduction     *bool                            `json:"in_production,omitempty"`
	Seasons          nullable.Nullable[[]SeasonEntry] `json:"seasons,omitempty"`
	LastEpisodeToAir *EpisodeEntry                    `json:"last_episode_to_air,omitempty"`
	NextEpisodeToAir *EpisodeEntry                    `json:"next_episode_to_air,omitempty"`
}

type SeasonEntry struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	SeasonNumber int32   `json:"season_number"`
	EpisodeCount int32   `json:"episode_count"`
	AirDate      *string `json:"air_date,omitempty"`
}

type SeasonDetailsResponse struct {
	ID           int32          `json:"id"`
	Name         string         `json:"name"`
	SeasonNumber int32          `json:"season_number"`
	AirDate      *string        `json:"air_date,omitempty"`
	Episodes     []EpisodeEntry `json:"episodes"`
}

type EpisodeEntry struct {
	ID            int32   `json:"id"`
	Name          string  `json:"name"`
	EpisodeNumber int32   `json:"episode_number"`
	SeasonNumber  int32   `json:"season_number"`
	AirDate       *string `json:"air_date,omitempty"`
}

// Tmdb issues requests through a ClientInterface and decodes the responses
type Tmdb struct {
	client   ClientInterface
	language *string
}

// New creates a Tmdb. An empty language uses the TMDB default.
func New(client ClientInterface, language string) *Tmdb {
	t := &Tmdb{client: client}
	if language != "" {
		t.language = &language
	}
	return t
}

// NewFromURL builds the underlying client for the given server url and api key
func NewFromURL(server, apiKey, language string, opts ...ClientOption) (*Tmdb, error) {
	opts = append(opts, WithRequestEditorFn(SetRequestAPIKey(apiKey)))
	c, err := NewClient(server, opts...)
	if err != nil {
		return nil, err
	}

	return New(c, language), nil
}

func SetRequestAPIKey(apiKey string) func(ctx context.Context, req *http.Request) error {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

func (t *Tmdb) SearchSeries(ctx context.Context, query string) (*SearchTvResponse, error) {
	if query == "" {
		return nil, errors.New("query is empty")
	}

	res, err := t.client.SearchTv(ctx, &SearchTvParams{Query: query, Language: t.language})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseSearchTvResponse(res)
}

func (t *Tmdb) GetSeriesDetails(ctx context.Context, seriesID int32) (*SeriesDetailsResponse, error) {
	res, err := t.client.TvSeriesDetails(ctx, seriesID, &TvSeriesDetailsParams{Language: t.language})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseSeriesDetailsResponse(res)
}

func (t *Tmdb) GetSeasonDetails(ctx context.Context, seriesID int32, seasonNumber int32) (*SeasonDetailsResponse, error) {
	res, err := t.client.TvSeasonDetails(ctx, seriesID, seasonNumber, &TvSeasonDetailsParams{Language: t.language})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseSeasonDetailsResponse(res)
}

func parseSearchTvResponse(res *http.Response) (*SearchTvResponse, error) {
	result := new(SearchTvResponse)
	if err := decode(res, result); err != nil {
		return nil, err
	}

	return result, nil
}

func parseSeriesDetailsResponse(res *http.Response) (*SeriesDetailsResponse, error) {
	result := new(SeriesDetailsResponse)
	if err := decode(res, result); err != nil {
		return nil, err
	}

	if result.ID == 0 {
		return nil, errors.New("series details response missing id")
	}

	return result, nil
}

func parseSeasonDetailsResponse(res *http.Response) (*SeasonDetailsResponse, error) {
	result := new(SeasonDetailsResponse)
	if err := decode(res, result); err != nil {
		return nil, err
	}

	if result.ID == 0 {
		return nil, errors.New("season details response missing id")
	}

	return result, nil
}

func decode(res *http.Response, v any) error {
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected tmdb status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}
