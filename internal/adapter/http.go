package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/config"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/models"
	"github.com/go-resty/resty/v2"
)

type httpNodeAdapter struct {
	client *resty.Client

	baseURL string

	logger *logger.Logger
}

// NewHTTPNodeAdapter constructs the HTTP implementation of [NodeAdapter].
// It normalises and validates the base URL from cfg.NodeAPIURL and configures
// the underlying resty client with the resolved base URL and the per-request
// timeout from cfg.RequestTimeout.
//
// Returns an error if cfg.NodeAPIURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPNodeAdapter(cfg config.Adapter, logger *logger.Logger) (NodeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.NodeAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid node api url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpNodeAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// FetchAllStamps implements [NodeAdapter]. It GETs the node's batch listing
// endpoint GET /batches in a single attempt bounded by the configured timeout
// and normalizes the response envelope into an ordered slice of raw records.
// Each failure kind is logged with the upstream URL before being returned.
func (h *httpNodeAdapter) FetchAllStamps(ctx context.Context) ([]models.RawStamp, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/batches")
	if err != nil {
		classified := classifyTransportError(err)
		h.logger.Err(classified).Str("url", h.baseURL+"/batches").Msg("error fetching stamps from the node")
		return nil, classified
	}
	if err = mapNodeStatus(resp); err != nil {
		h.logger.Err(err).Str("url", h.baseURL+"/batches").Msg("node rejected the stamps request")
		return nil, err
	}

	records, err := normalizeBatchEnvelope(resp.Body())
	if err != nil {
		h.logger.Err(err).Str("url", h.baseURL+"/batches").Msg("unrecognized stamps response shape")
		return nil, err
	}

	return records, nil
}

// GetWalletInfo implements [NodeAdapter]. It GETs the node's wallet endpoint
// GET /wallet and decodes the address and BZZ balance.
func (h *httpNodeAdapter) GetWalletInfo(ctx context.Context) (models.WalletInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/wallet")
	if err != nil {
		classified := classifyTransportError(err)
		h.logger.Err(classified).Str("url", h.baseURL+"/wallet").Msg("error fetching wallet info from the node")
		return models.WalletInfo{}, classified
	}
	if err = mapNodeStatus(resp); err != nil {
		h.logger.Err(err).Str("url", h.baseURL+"/wallet").Msg("node rejected the wallet request")
		return models.WalletInfo{}, err
	}

	var wallet models.WalletInfo
	if err = json.Unmarshal(resp.Body(), &wallet); err != nil {
		return models.WalletInfo{}, fmt.Errorf("%w: decode wallet response: %v", ErrMalformedResponse, err)
	}

	return wallet, nil
}

// GetChequebookInfo implements [NodeAdapter]. It GETs the chequebook address
// from GET /chequebook/address and then the balances from
// GET /chequebook/balance. The balance lookup is best-effort: on failure the
// result degrades to an address-only response.
func (h *httpNodeAdapter) GetChequebookInfo(ctx context.Context) (models.ChequebookInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/chequebook/address")
	if err != nil {
		classified := classifyTransportError(err)
		h.logger.Err(classified).Str("url", h.baseURL+"/chequebook/address").Msg("error fetching chequebook address from the node")
		return models.ChequebookInfo{}, classified
	}
	if err = mapNodeStatus(resp); err != nil {
		h.logger.Err(err).Str("url", h.baseURL+"/chequebook/address").Msg("node rejected the chequebook request")
		return models.ChequebookInfo{}, err
	}

	var chequebook models.ChequebookInfo
	if err = json.Unmarshal(resp.Body(), &chequebook); err != nil {
		return models.ChequebookInfo{}, fmt.Errorf("%w: decode chequebook response: %v", ErrMalformedResponse, err)
	}

	balanceResp, err := h.client.R().SetContext(ctx).Get("/chequebook/balance")
	if err != nil || mapNodeStatus(balanceResp) != nil {
		h.logger.Warn().Str("url", h.baseURL+"/chequebook/balance").Msg("chequebook balance unavailable, returning address only")
		return chequebook, nil
	}

	var balances struct {
		AvailableBalance string `json:"availableBalance"`
		TotalBalance     string `json:"totalBalance"`
	}
	if err = json.Unmarshal(balanceResp.Body(), &balances); err == nil {
		chequebook.AvailableBalance = balances.AvailableBalance
		chequebook.TotalBalance = balances.TotalBalance
	}

	return chequebook, nil
}

// classifyTransportError maps a resty transport error to one of the sentinel
// failure kinds. Deadline expiry (whether detected by the net layer or by the
// request context) is a timeout; everything else counts as unreachable.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrNodeTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrNodeTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrNodeUnreachable, err)
}

// mapNodeStatus converts a non-2xx node response into a wrapped
// [ErrNodeStatus] carrying the original status code.
func mapNodeStatus(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrNodeStatus, resp.StatusCode(), body)
}
