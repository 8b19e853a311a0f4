// Package commerce is the typed HTTP client over the commerce backend of
// record. Every method builds a URL, issues one request and returns the
// parsed body; there are no retries and no caching. Non-success statuses
// become kind-classified errors carrying the backend's message when one
// is decodable.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/internal/pkg/errs"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.CommerceConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "encode request for "+path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnreachable, "build request for "+path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnreachable, "request "+method+" "+path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "read response of "+path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "decode response of "+path, err)
	}
	return nil
}

// backendFailure is the backend's error envelope; Django hands back
// either "message" or "error" depending on the view.
type backendFailure struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func (f backendFailure) text() string {
	switch {
	case f.Message != "":
		return f.Message
	case f.Error != "":
		return f.Error
	default:
		return f.Detail
	}
}

func (c *Client) statusError(path string, status int, raw []byte) error {
	var failure backendFailure
	_ = json.Unmarshal(raw, &failure)

	msg := failure.text()
	if msg == "" {
		msg = "request to " + path + " failed"
	}

	kind := infra.KindBackendRejected
	if status == http.StatusNotFound {
		kind = infra.KindNotFound
	}
	return infra.WrapGatewayErr(c.logger, kind, msg, errs.New(http.StatusText(status)))
}

// decodeList tolerates both a bare JSON array and the paginated
// {"results": [...]} envelope DRF uses on some list endpoints.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
