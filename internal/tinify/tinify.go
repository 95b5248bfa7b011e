// Package tinify implements a client for the Tinify image optimization REST
// API. Every call is a two step conversation: the raw image is posted to
// /shrink, then the returned output URL is posted again with the wanted
// resize and convert options to receive the transformed bytes.
package tinify

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second

	// ConvertWebP is the target MIME type for WebP conversion.
	ConvertWebP = "image/webp"

	// MethodFit scales within width and height, keeping aspect ratio.
	MethodFit = "fit"
	// MethodScale scales proportionally to one given dimension.
	MethodScale = "scale"
)

// Config holds the connection settings for the optimization service.
type Config struct {
	// Key is the API key, sent as the password of basic auth user "api".
	Key string
	// URL is the service base URL.
	URL string
	// Timeout bounds each HTTP request. Zero means defaultTimeout.
	Timeout time.Duration
}

// Options select the transformation applied to a shrunk image.
type Options struct {
	// Method is MethodFit or MethodScale. Empty means no resize.
	Method string
	// Width in pixels. MethodFit needs both dimensions, MethodScale one.
	Width int
	// Height in pixels. MethodFit needs both dimensions, MethodScale one.
	Height int
	// Convert is the target MIME type. Empty means keep the input type.
	Convert string
}

// Client talks to the optimization service.
type Client struct {
	baseURL string
	http    fastshot.ClientHttpMethods
}

type shrinkResponse struct {
	Output struct {
		URL  string `json:"url"`
		Size int64  `json:"size"`
		Type string `json:"type"`
	} `json:"output"`
}

type resizeRequest struct {
	Resize  *resizeOptions  `json:"resize,omitempty"`
	Convert *convertOptions `json:"convert,omitempty"`
}

type resizeOptions struct {
	Method string `json:"method"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type convertOptions struct {
	Type string `json:"type"`
}

// New creates a Client for the given service settings.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	auth := "Basic " + base64.StdEncoding.EncodeToString([]byte("api:"+cfg.Key))

	return &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		http: fastshot.NewClient(cfg.URL).
			Config().SetTimeout(timeout).
			Header().Add("Authorization", auth).
			Build(),
	}
}

// Compress shrinks the image and applies the requested transformation.
// It returns the transformed image bytes.
func (c *Client) Compress(ctx context.Context, data []byte, opts Options) ([]byte, error) {
	if c == nil {
		return nil, ErrClientNotInitialized
	}

	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	outputPath, err := c.shrink(ctx, data)
	if err != nil {
		return nil, err
	}

	return c.transform(ctx, outputPath, opts)
}

// Validate checks the API key by posting an empty shrink request. The
// service answers 400 for a valid key and 401 for a broken one.
func (c *Client) Validate(ctx context.Context) error {
	if c == nil {
		return ErrClientNotInitialized
	}

	resp, err := c.http.POST("/shrink").
		Context().Set(ctx).
		Send()
	if err != nil {
		return errors.Wrap(err, "optimization service unreachable")
	}
	defer resp.Body().Close()

	apiErr := decodeError(resp)
	if apiErr == nil {
		return nil
	}

	var e *Error
	if errors.As(apiErr, &e) && e.Status != 401 && e.Status != 403 {
		// any non-auth error means the key itself was accepted
		return nil
	}

	return apiErr
}

// shrink uploads the raw bytes and returns the path of the shrunk output.
func (c *Client) shrink(ctx context.Context, data []byte) (string, error) {
	resp, err := c.http.POST("/shrink").
		Context().Set(ctx).
		Body().AsReader(bytes.NewReader(data)).
		Send()
	if err != nil {
		return "", errors.Wrap(err, "shrink request failed")
	}
	defer resp.Body().Close()

	if err := decodeError(resp); err != nil {
		return "", err
	}

	var shrunk shrinkResponse
	if err := resp.Body().AsJSON(&shrunk); err != nil {
		return "", errors.Wrap(err, "failed to decode shrink response")
	}

	if shrunk.Output.URL == "" {
		return "", ErrNoOutput
	}

	// the output URL lives under the same host as the base URL
	return strings.TrimPrefix(shrunk.Output.URL, c.baseURL), nil
}

// transform posts the resize and convert options against the shrunk output
// and returns the resulting image bytes.
func (c *Client) transform(ctx context.Context, outputPath string, opts Options) ([]byte, error) {
	req := resizeRequest{}

	if opts.Method != "" && (opts.Width > 0 || opts.Height > 0) {
		req.Resize = &resizeOptions{
			Method: opts.Method,
			Width:  opts.Width,
			Height: opts.Height,
		}
	}

	if opts.Convert != "" {
		req.Convert = &convertOptions{Type: opts.Convert}
	}

	resp, err := c.http.POST(outputPath).
		Context().Set(ctx).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(req).
		Send()
	if err != nil {
		return nil, errors.Wrap(err, "transform request failed")
	}
	defer resp.Body().Close()

	if err := decodeError(resp); err != nil {
		return nil, err
	}

	body, err := resp.Body().AsString()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read transformed image")
	}

	if body == "" {
		return nil, ErrNoOutput
	}

	return []byte(body), nil
}

// decodeError turns an API error response into an *Error.
func decodeError(resp *fastshot.Response) error {
	if !resp.Status().IsError() {
		return nil
	}

	apiErr := &Error{Status: resp.Status().Code()}

	var payload struct {
		ErrorCode string `json:"error"`
		Message   string `json:"message"`
	}

	if err := resp.Body().AsJSON(&payload); err == nil {
		apiErr.Code = payload.ErrorCode
		apiErr.Message = payload.Message
	}

	return apiErr
}
