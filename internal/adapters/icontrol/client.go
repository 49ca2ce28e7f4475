package icontrol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Client is an authenticated iControl REST session.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         log.Logger
}

var _ ports.Appliance = (*Client)(nil)

type memberRequest struct {
	Name      string `json:"name"`
	Partition string `json:"partition"`
	Address   string `json:"address"`
}

func (c *Client) PoolExists(ctx context.Context, pool domain.PoolIdentifier) error {
	err := c.do(ctx, http.MethodGet, poolPath(pool), nil, nil)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("get pool %s: %w: %w", pool.FullPath(), domain.ErrPoolNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("get pool %s: %w", pool.FullPath(), err)
	}
	return nil
}

func (c *Client) MemberExists(ctx context.Context, pool domain.PoolIdentifier, member domain.MemberIdentifier) (bool, error) {
	err := c.do(ctx, http.MethodGet, memberPath(pool, member), nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get pool member %s: %w", member.FullPath(), err)
	}
	return true, nil
}

func (c *Client) AddMember(ctx context.Context, pool domain.PoolIdentifier, member domain.MemberIdentifier) error {
	body := memberRequest{Name: member.Name(), Partition: member.Partition, Address: member.Host}
	if err := c.do(ctx, http.MethodPost, poolPath(pool)+"/members", body, nil); err != nil {
		return fmt.Errorf("add pool member %s: %w", member.FullPath(), err)
	}
	return nil
}

func (c *Client) RemoveMember(ctx context.Context, pool domain.PoolIdentifier, member domain.MemberIdentifier) error {
	if err := c.do(ctx, http.MethodDelete, memberPath(pool, member), nil, nil); err != nil {
		return fmt.Errorf("remove pool member %s: %w", member.FullPath(), err)
	}
	return nil
}

func (c *Client) DeleteNodeAddress(ctx context.Context, member domain.MemberIdentifier) error {
	if err := c.do(ctx, http.MethodDelete, "/mgmt/tm/ltm/node/"+objectSegment(member.Address()), nil, nil); err != nil {
		return fmt.Errorf("delete node address %s: %w", member.Address(), err)
	}
	return nil
}

// Close gives the session token back to the appliance. A token the appliance
// already dropped, expired or unknown, counts as released.
func (c *Client) Close(ctx context.Context) error {
	if c.token == "" {
		return nil
	}

	err := c.do(ctx, http.MethodDelete, tokensPath+url.PathEscape(c.token), nil, nil)
	c.token = ""
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, domain.ErrAuthentication) {
		return fmt.Errorf("release session token: %w", err)
	}

	_ = level.Debug(c.logger).Log("op", "logout", "msg", "session token released")
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	_ = level.Debug(c.logger).Log("op", "request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeFault(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.requestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func poolPath(pool domain.PoolIdentifier) string {
	return "/mgmt/tm/ltm/pool/" + objectSegment(pool.FullPath())
}

func memberPath(pool domain.PoolIdentifier, member domain.MemberIdentifier) string {
	return poolPath(pool) + "/members/" + objectSegment(member.FullPath())
}

// objectSegment turns "/Common/name" into the "~Common~name" URL form.
func objectSegment(fullPath string) string {
	return url.PathEscape(strings.ReplaceAll(fullPath, "/", "~"))
}
