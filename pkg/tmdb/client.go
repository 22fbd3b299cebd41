package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// Client talks to the TMDB v3 REST api
type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.themoviedb.org for example.
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}

	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}

	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}

	if client.Client == nil {
		client.Client = &http.Client{}
	}

	return &client, nil
}

// WithHTTPClient allows overriding the default Doer
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// ClientInterface is the raw endpoint surface the bot relies on
type ClientInterface interface {
	SearchTv(ctx context.Context, params *SearchTvParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	TvSeriesDetails(ctx context.Context, seriesID int32, params *TvSeriesDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	TvSeasonDetails(ctx context.Context, seriesID int32, seasonNumber int32, params *TvSeasonDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
}

type SearchTvParams struct {
	Query    string  `form:"query" json:"query"`
	Language *string `form:"language,omitempty" json:"language,omitempty"`
	Page     *int32  `form:"page,omitempty" json:"page,omitempty"`
}

type TvSeriesDetailsParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

type TvSeasonDetailsParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

func (c *Client) SearchTv(ctx context.Context, params *SearchTvParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewSearchTvRequest(c.Server, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, reqEditors)
}

func (c *Client) TvSeriesDetails(ctx context.Context, seriesID int32, params *TvSeriesDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewTvSeriesDetailsRequest(c.Server, seriesID, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, reqEditors)
}

func (c *Client) TvSeasonDetails(ctx context.Context, seriesID int32, seasonNumber int32, params *TvSeasonDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewTvSeasonDetailsRequest(c.Server, seriesID, seasonNumber, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, reqEditors)
}

func (c *Client) do(ctx context.Context, req *http.Request, additionalEditors []RequestEditorFn) (*http.Response, error) {
	req = req.WithContext(ctx)
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return nil, err
		}
	}
	for _, r := range additionalEditors {
		if err := r(ctx, req); err != nil {
			return nil, err
		}
	}
	return c.Client.Do(req)
}

// NewSearchTvRequest generates requests for SearchTv
func NewSearchTvRequest(server string, params *SearchTvParams) (*http.Request, error) {
	queryURL, err := operationURL(server, "/3/search/tv")
	if err != nil {
		return nil, err
	}

	if params != nil {
		queryValues := queryURL.Query()

		if err := addQueryParam(queryValues, "query", params.Query); err != nil {
			return nil, err
		}

		if params.Language != nil {
			if err := addQueryParam(queryValues, "language", *params.Language); err != nil {
				return nil, err
			}
		}

		if params.Page != nil {
			if err := addQueryParam(queryValues, "page", *params.Page); err != nil {
				return nil, err
			}
		}

		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

// NewTvSeriesDetailsRequest generates requests for TvSeriesDetails
func NewTvSeriesDetailsRequest(server string, seriesID int32, params *TvSeriesDetailsParams) (*http.Request, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "series_id", runtime.ParamLocationPath, seriesID)
	if err != nil {
		return nil, err
	}

	queryURL, err := operationURL(server, fmt.Sprintf("/3/tv/%s", pathParam0))
	if err != nil {
		return nil, err
	}

	if params != nil && params.Language != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "language", *params.Language); err != nil {
			return nil, err
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

// NewTvSeasonDetailsRequest generates requests for TvSeasonDetails
func NewTvSeasonDetailsRequest(server string, seriesID int32, seasonNumber int32, params *TvSeasonDetailsParams) (*http.Request, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "series_id", runtime.ParamLocationPath, seriesID)
	if err != nil {
		return nil, err
	}

	pathParam1, err := runtime.StyleParamWithLocation("simple", false, "season_number", runtime.ParamLocationPath, seasonNumber)
	if err != nil {
		return nil, err
	}

	queryURL, err := operationURL(server, fmt.Sprintf("/3/tv/%s/season/%s", pathParam0, pathParam1))
	if err != nil {
		return nil, err
	}

	if params != nil && params.Language != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "language", *params.Language); err != nil {
			return nil, err
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

func operationURL(server, path string) (*url.URL, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := strings.TrimPrefix(path, "/")
	return serverURL.Parse(operationPath)
}

func addQueryParam(values url.Values, name string, value any) error {
	queryFrag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return err
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return err
	}

	for k, v := range parsed {
		for _, v2 := range v {
			values.Add(k, v2)
		}
	}

	return nil
}
