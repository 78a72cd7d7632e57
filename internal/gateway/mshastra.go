package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/phone"
	"github.com/teleline/smsgate/internal/sms"
)

// TypeMshastra is the type handle of the reference gateway implementation.
const TypeMshastra = "mshastra"

// Settings keys understood by the Mshastra gateway.
const (
	SettingAPIURL           = "api_url"
	SettingUser             = "user"
	SettingPassword         = "password"
	SettingDevUser          = "dev_user"
	SettingDevPassword      = "dev_password"
	SettingAllowedCountries = "allowed_countries"
	SettingPriority         = "priority"
)

// AllowedCountries parses the comma-separated allowed-country setting from a
// provider settings blob. An empty result means unrestricted.
func AllowedCountries(settings map[string]string) []string {
	raw := strings.TrimSpace(settings[SettingAllowedCountries])
	if raw == "" {
		return nil
	}

	var codes []string
	for _, part := range strings.Split(raw, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, strings.ToUpper(code))
		}
	}
	return codes
}

// Mshastra talks to the Mobishastra HTTP gateway. The outbound URL is built
// by manual concatenation: the message body arrives pre-encoded and must not
// pass through a query builder a second time.
type Mshastra struct {
	Base

	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewMshastra builds the gateway with a bounded-timeout client and a circuit
// breaker around the transport.
func NewMshastra(cfg *config.GatewayConfig, logger *zap.Logger) *Mshastra {
	settings := gobreaker.Settings{
		Name:        "mshastra-gateway",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
		Timeout:     time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.CircuitBreaker.ConsecutiveFails &&
				failureRatio >= cfg.CircuitBreaker.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Gateway circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Mshastra{
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

func (g *Mshastra) Handle() string      { return TypeMshastra }
func (g *Mshastra) DisplayName() string { return "Mobishastra" }

func (g *Mshastra) Description() string {
	return "Sends messages through the Mobishastra HTTP gateway"
}

func (g *Mshastra) SupportsConnectionTest() bool { return true }

// ValidateSettings reports per-field errors for the settings blob.
func (g *Mshastra) ValidateSettings(settings map[string]string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(settings[SettingAPIURL]) == "" {
		errs[SettingAPIURL] = "API URL is required"
	} else if _, err := url.ParseRequestURI(settings[SettingAPIURL]); err != nil {
		errs[SettingAPIURL] = "API URL is not a valid URL"
	}
	if strings.TrimSpace(settings[SettingUser]) == "" {
		errs[SettingUser] = "user is required"
	}
	if strings.TrimSpace(settings[SettingPassword]) == "" {
		errs[SettingPassword] = "password is required"
	}

	for _, code := range AllowedCountries(settings) {
		if code == phone.Wildcard {
			continue
		}
		if _, ok := phone.Lookup(code); !ok {
			errs[SettingAllowedCountries] = fmt.Sprintf("unknown country code %q", code)
			break
		}
	}

	return errs
}

// TestConnection issues a credential-only request and treats any reply that
// does not reject the credentials as reachable.
func (g *Mshastra) TestConnection(ctx context.Context, settings map[string]string) bool {
	probe := strings.TrimRight(settings[SettingAPIURL], "?&") +
		"?user=" + url.QueryEscape(settings[SettingUser]) +
		"&pwd=" + url.QueryEscape(settings[SettingPassword])

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probe, nil)
	if err != nil {
		return false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}

	return resp.StatusCode < http.StatusBadRequest &&
		!strings.Contains(string(body), "Invalid")
}

// Send submits one message. A response containing the literal substring "OK"
// counts as accepted; the gateway-assigned id is parsed from the
// "smsid:<value>," pattern in the comma-delimited response body.
func (g *Mshastra) Send(ctx context.Context, req SendRequest) SendResult {
	user := req.Settings[SettingUser]
	password := req.Settings[SettingPassword]
	if req.Development && req.Settings[SettingDevUser] != "" {
		user = req.Settings[SettingDevUser]
		password = req.Settings[SettingDevPassword]
	}

	priority := req.Settings[SettingPriority]
	if priority == "" {
		priority = "High"
	}

	body := sms.Encode(req.Message, req.Language)

	// msgtext is pre-encoded; concatenate instead of a query builder so it
	// is not escaped twice.
	rawURL := strings.TrimRight(req.Settings[SettingAPIURL], "?&") +
		"?user=" + url.QueryEscape(user) +
		"&pwd=" + url.QueryEscape(password) +
		"&senderid=" + url.QueryEscape(req.SenderValue) +
		"&mobileno=" + req.To +
		"&language=" + strconv.Itoa(sms.LanguageCode(req.Language)) +
		"&priority=" + url.QueryEscape(priority) +
		"&msgtext=" + body

	response, err := g.breaker.Execute(func() (interface{}, error) {
		httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}

		resp, doErr := g.client.Do(httpReq)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach gateway: %w", doErr)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				g.logger.Warn("Failed to close gateway response body", zap.Error(closeErr))
			}
		}()

		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read gateway response: %w", readErr)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(respBody))
		}

		return string(respBody), nil
	})

	if err != nil {
		g.logger.Warn("Gateway send failed",
			zap.String("to", req.To),
			zap.Error(err))
		return SendResult{Err: err.Error()}
	}

	respBody := response.(string)
	result := SendResult{
		Response:  respBody,
		MessageID: parseMessageID(respBody),
	}

	if strings.Contains(respBody, "OK") {
		result.Success = true
	} else {
		result.Err = fmt.Sprintf("gateway rejected message: %s", respBody)
	}

	return result
}

// parseMessageID extracts the value between "smsid:" and the next comma.
func parseMessageID(body string) string {
	const marker = "smsid:"

	idx := strings.Index(body, marker)
	if idx < 0 {
		return ""
	}

	rest := body[idx+len(marker):]
	if end := strings.Index(rest, ","); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
