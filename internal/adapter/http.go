package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
	"github.com/MKhiriev/video-blog/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A zero timeout
// disables the per-request deadline.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return h.authenticate(ctx, "/login", credentials)
}

// authenticate posts body to path and stores the token from the response.
// The body token wins; the Authorization header is the fallback.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.Token, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&authResponse).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed := authResponse.AccessToken
	if signed == "" {
		if signed, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.Token{}, fmt.Errorf("%w: %w", ErrNoToken, err)
		}
	}

	h.SetToken(signed)
	h.logger.Debug().Str("path", path).Msg("token stored")

	return models.Token{SignedString: signed}, nil
}

func (h *httpServerAdapter) ListVideos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video

	resp, err := h.authedRequest(ctx).
		SetResult(&videos).
		Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("list videos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}

func (h *httpServerAdapter) CreateVideo(ctx context.Context, video models.NewVideo) (models.Video, error) {
	var created models.Video

	resp, err := h.authedRequest(ctx).
		SetBody(video).
		SetResult(&created).
		Post("/videos")
	if err != nil {
		return models.Video{}, fmt.Errorf("create video request: %w", err)
	}

	return created, mapHTTPError(resp)
}

func (h *httpServerAdapter) GetVideo(ctx context.Context, id int64) (models.Video, error) {
	var video models.Video

	resp, err := h.authedRequest(ctx).
		SetResult(&video).
		Get(videoPath(id))
	if err != nil {
		return models.Video{}, fmt.Errorf("get video request: %w", err)
	}

	return video, mapHTTPError(resp)
}

func (h *httpServerAdapter) UpdateVideo(ctx context.Context, id int64, update models.VideoUpdate) (models.Video, error) {
	var updated models.Video

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&updated).
		Put(videoPath(id))
	if err != nil {
		return models.Video{}, fmt.Errorf("update video request: %w", err)
	}

	return updated, mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteVideo(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(videoPath(id))
	if err != nil {
		return fmt.Errorf("delete video request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

func videoPath(id int64) string {
	return "/videos/" + strconv.FormatInt(id, 10) + "/"
}
