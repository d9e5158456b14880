// Package reservationapi talks to the remote Reservation Service over its
// create and list endpoints.
package reservationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra/converter"
	"table-booking/internal/pkg/config"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	opCreate = "create reservation"
	opList   = "list reservations"

	maxDrainBytes = 1 << 20
)

type Client struct {
	httpClient *http.Client
	createURL  string
	listURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.ReservationAPIConfig, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, logger)
}

func NewClientWithHTTP(cfg config.ReservationAPIConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		createURL:  cfg.CreateURL(),
		listURL:    cfg.ListURL(),
		logger:     logger,
	}
}

// Create posts draft to the create endpoint. Any 2xx is an acknowledgement;
// the response body is never interpreted.
func (c *Client) Create(ctx context.Context, draft reservation.Reservation) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Create")
	defer span.End()

	body, err := converter.ReservationToCreateBody(draft)
	if err != nil {
		return c.fail(span, opCreate, KindMalformed, 0, err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return c.fail(span, opCreate, KindMalformed, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.createURL, bytes.NewReader(payload))
	if err != nil {
		return c.fail(span, opCreate, KindTransport, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.tagRequest(req, span)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(span, opCreate, KindTransport, 0, err)
	}
	defer drainAndClose(resp.Body)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if !isSuccess(resp.StatusCode) {
		return c.fail(span, opCreate, KindRejected, resp.StatusCode, nil)
	}

	c.logger.Debug("Reservation created", "status_code", resp.StatusCode)
	return nil
}

// List fetches every persisted reservation in the order the service sends them.
func (c *Client) List(ctx context.Context) ([]reservation.Booked, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "List")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return nil, c.fail(span, opList, KindTransport, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	c.tagRequest(req, span)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(span, opList, KindTransport, 0, err)
	}
	defer drainAndClose(resp.Body)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if !isSuccess(resp.StatusCode) {
		return nil, c.fail(span, opList, KindRejected, resp.StatusCode, nil)
	}

	var records []reservation.Booked
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, c.fail(span, opList, KindMalformed, resp.StatusCode, err)
	}
	if records == nil {
		records = []reservation.Booked{}
	}

	span.SetAttributes(attribute.Int("reservations.count", len(records)))
	c.logger.Debug("Reservations listed", "count", len(records))
	return records, nil
}

func (c *Client) tagRequest(req *http.Request, span trace.Span) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	span.SetAttributes(attribute.String("request_id", requestID))
}

func (c *Client) fail(span trace.Span, op string, kind ErrorKind, status int, err error) error {
	wrapped := wrapServiceErr(c.logger, op, kind, status, err)
	span.RecordError(wrapped)
	span.SetStatus(codes.Error, string(kind))
	return wrapped
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	_ = body.Close()
}
