package publisher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"auto_blog_publisher/config"
)

const (
	mediaPath = "/wp-json/wp/v2/media"
	postsPath = "/wp-json/wp/v2/posts"
)

// Post describes one article submission.
type Post struct {
	Title      string
	Content    string
	Excerpt    string
	MediaID    int64
	Categories []int
}

type postPayload struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Status        string `json:"status"`
	FeaturedMedia int64  `json:"featured_media"`
	Categories    []int  `json:"categories,omitempty"`
}

type mediaResp struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type postResp struct {
	Link    string `json:"link"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client talks to the WordPress REST API with Basic auth built from the
// username and an application password.
type Client struct {
	baseURL string
	auth    string
	client  *http.Client
	verbose bool
	logger  *log.Logger
}

// New creates a Client. The base URL is validated here so a bad config fails
// at startup rather than mid-run.
func New(cfg config.WordPress, client *http.Client, verbose bool, logger *log.Logger) (*Client, error) {
	if cfg.BaseURL == "" || cfg.Username == "" || cfg.AppPassword == "" {
		return nil, errors.New("wordpress config must include base_url, username, and app_password")
	}
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	if logger == nil {
		logger = log.Default()
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.AppPassword))

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		auth:    "Basic " + credentials,
		client:  client,
		verbose: verbose,
		logger:  logger,
	}, nil
}

func (c *Client) infof(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	c.logger.Printf("[INFO] "+format, args...)
}

// UploadMedia pushes raw image bytes to the media library and returns the
// media ID to attach as the post's featured image.
func (c *Client) UploadMedia(ctx context.Context, data []byte, contentType, filename string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+mediaPath, bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var body mediaResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.ID == 0 {
		return 0, fmt.Errorf("failed to upload media: %s %s", body.Code, body.Message)
	}
	c.infof("Uploaded media %s -> id=%d", filename, body.ID)
	return body.ID, nil
}

// CreatePost publishes the article and returns its public URL.
func (c *Client) CreatePost(ctx context.Context, post Post) (string, error) {
	payload, err := json.Marshal(postPayload{
		Title:         post.Title,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		Status:        "publish",
		FeaturedMedia: post.MediaID,
		Categories:    post.Categories,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+postsPath, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body postResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Link == "" {
		return "", fmt.Errorf("failed to create post: %s %s", body.Code, body.Message)
	}
	c.infof("Post created: %s", body.Link)
	return body.Link, nil
}
