package derpi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tschrock/derpi/client"
	"github.com/tschrock/derpi/querystring"
)

const (
	currentUserPath = "/api/v2/users/current.json"
	showUserPath    = "/api/v2/users/show.json"
	fetchUsersPath  = "/api/v2/users/fetch_many.json"
	profilePathFmt  = "/profiles/%s.json"
)

// Client issues requests against a Derpibooru server. It owns its HTTP
// client and API key and holds no other state.
type Client struct {
	http   *client.Client
	base   *url.URL
	apiKey string
}

// New creates a Client authenticating with apiKey.
// The server defaults to [DefaultServerAddress].
func New(apiKey string, optFns ...Option) (*Client, error) {
	opts := options{serverAddress: DefaultServerAddress}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	cfg := config{ServerAddress: opts.serverAddress, APIKey: apiKey}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	base, err := url.Parse(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("parsing server address: %w", err)
	}

	httpOpts := opts.httpOpts
	if opts.logger != nil {
		httpOpts = append(httpOpts, client.WithLogger(opts.logger))
	}

	hc, err := client.Build(httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("building http client: %w", err)
	}

	return &Client{
		http:   hc,
		base:   base,
		apiKey: cfg.APIKey,
	}, nil
}

// CurrentUser returns the user owning the API key.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	qs := querystring.New().Add("key", c.apiKey)

	user, err := get[User](ctx, c, currentUserPath, qs)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return &user, nil
}

// UserByID returns the user with the given id.
func (c *Client) UserByID(ctx context.Context, id int) (*User, error) {
	qs := querystring.New().AddInt("id", id)

	user, err := get[User](ctx, c, showUserPath, qs)
	if err != nil {
		return nil, fmt.Errorf("getting user[%d]: %w", id, err)
	}

	return &user, nil
}

// UsersByID returns the users with the given ids in a single request.
func (c *Client) UsersByID(ctx context.Context, ids ...int) ([]User, error) {
	qs := querystring.New().AddInts("ids", ids...)

	users, err := get[[]User](ctx, c, fetchUsersPath, qs)
	if err != nil {
		return nil, fmt.Errorf("getting users%v: %w", ids, err)
	}

	return users, nil
}

// UserByName returns the user with the given display name.
func (c *Client) UserByName(ctx context.Context, name string) (*User, error) {
	path := fmt.Sprintf(profilePathFmt, querystring.Escape(name))

	user, err := get[User](ctx, c, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user[%s]: %w", name, err)
	}

	return &user, nil
}

// get performs a GET for path and qs and decodes the JSON body into a T.
func get[T any](ctx context.Context, c *Client, path string, qs *querystring.QueryString) (T, error) {
	var dest T
	if err := c.http.Get(ctx, c.base, path, qs, client.WithDestination(&dest)); err != nil {
		return dest, err
	}

	return dest, nil
}
