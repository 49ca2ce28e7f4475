package icontrol

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/f5m/internal/ports"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

const (
	loginPath             = "/mgmt/shared/authn/login"
	tokensPath            = "/mgmt/shared/authz/tokens/"
	tokenHeader           = "X-F5-Auth-Token"
	loginProvider         = "tmos"
	defaultPort           = 443
	defaultRequestTimeout = 30 * time.Second
	maxResponseBytes      = 1 << 20
)

// Dialer logs in to iControl REST and hands out token-authenticated clients.
// When HTTPClient is nil a client honoring Endpoint.ValidateCerts is built.
type Dialer struct {
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         log.Logger
}

var _ ports.ApplianceDialer = Dialer{}

type loginRequest struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	LoginProviderName string `json:"loginProviderName"`
}

type loginResponse struct {
	Token struct {
		Token string `json:"token"`
	} `json:"token"`
}

func (d Dialer) Dial(ctx context.Context, endpoint ports.Endpoint) (ports.Appliance, error) {
	base, err := baseURL(endpoint)
	if err != nil {
		return nil, err
	}

	logger := d.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	client := &Client{
		baseURL:        base,
		httpClient:     d.httpClient(endpoint),
		requestTimeout: d.RequestTimeout,
		logger:         log.With(logger, "server", base),
	}

	var session loginResponse
	err = client.do(ctx, http.MethodPost, loginPath, loginRequest{
		Username:          endpoint.User,
		Password:          endpoint.Password,
		LoginProviderName: loginProvider,
	}, &session)
	if err != nil {
		return nil, fmt.Errorf("login as %q: %w", endpoint.User, err)
	}
	if session.Token.Token == "" {
		return nil, errors.New("login response missing token")
	}

	client.token = session.Token.Token
	_ = level.Debug(client.logger).Log("op", "login", "user", endpoint.User, "msg", "session token acquired")

	return client, nil
}

func (d Dialer) httpClient(endpoint ports.Endpoint) *http.Client {
	if d.HTTPClient != nil {
		return d.HTTPClient
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !endpoint.ValidateCerts}
	return &http.Client{Transport: transport}
}

// baseURL accepts a bare host name or a full http(s) URL in Endpoint.Server.
func baseURL(endpoint ports.Endpoint) (string, error) {
	server := strings.TrimSpace(endpoint.Server)
	if server == "" {
		return "", errors.New("server is required")
	}

	if !strings.Contains(server, "://") {
		port := endpoint.Port
		if port == 0 {
			port = defaultPort
		}
		server = "https://" + net.JoinHostPort(server, strconv.Itoa(port))
	}

	parsed, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("server url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("server url host is required")
	}

	return parsed.Scheme + "://" + parsed.Host, nil
}
