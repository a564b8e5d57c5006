package userclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shophub/order-placement-service/internal/config"
	"github.com/shophub/order-placement-service/internal/entities"
)

// Client resolves users against the remote user service. One blocking GET
// per call, no retry, no caching: a 404 means the user does not exist,
// everything else that goes wrong is an infrastructure failure.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

func New(logger *slog.Logger, cfg config.UserService) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		logger:  logger.With(slog.String("client", "users")),
	}
}

type userResponse struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c *Client) UserByID(ctx context.Context, userID int) (entities.User, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.User{}, fmt.Errorf("%w: %v", entities.ErrUserUnreachable, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "user service call failed",
			slog.Int("user_id", userID), slog.Any("error", err))
		return entities.User{}, fmt.Errorf("%w: %v", entities.ErrUserUnreachable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return entities.User{}, entities.ErrUserNotFound
	case res.StatusCode != http.StatusOK:
		return entities.User{}, fmt.Errorf("%w: unexpected status %d", entities.ErrUserUnreachable, res.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entities.User{}, fmt.Errorf("%w: failed to decode response: %v", entities.ErrUserUnreachable, err)
	}

	return entities.User{
		UserID:    body.UserID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	}, nil
}
