package client

import (
	"context"
	"sort"
	"sync"
	"time"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"

	"go.uber.org/zap"
)

func messagesKey(bookingID string) Key {
	return Key{Resource: ResourceMessages, ID: bookingID}
}

// Messages fetches a booking's thread and caches it for the poller diff.
func (c *Client) Messages(ctx context.Context, bookingID, scope string) ([]response.MessageResponse, error) {
	var messages []response.MessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("scope", scope).
		Get("/api/support/bookings/" + bookingID + "/messages")
	if err := c.decode(resp, err, &messages); err != nil {
		return nil, err
	}

	c.cache.Set(messagesKey(bookingID), messages)
	return messages, nil
}

// SendMessage posts a message and invalidates the thread cache; the next
// poll tick picks the message up with its server-side fields.
func (c *Client) SendMessage(ctx context.Context, req request.SendMessageRequest) (*response.MessageResponse, error) {
	var message response.MessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/support/messages")
	if err := c.decode(resp, err, &message); err != nil {
		c.notifyError(err)
		return nil, err
	}

	c.cache.Invalidate(messagesKey(req.BookingID))
	return &message, nil
}

// MarkMessageRead flags one message; invalidate-only like SendMessage.
func (c *Client) MarkMessageRead(ctx context.Context, bookingID, messageID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request.MarkReadRequest{MessageID: messageID}).
		Put("/api/support/messages/read")
	if err := c.decode(resp, err, nil); err != nil {
		return err
	}

	c.cache.Invalidate(messagesKey(bookingID))
	return nil
}

// MarkAllRead flags the whole thread.
func (c *Client) MarkAllRead(ctx context.Context, bookingID, scope string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request.MarkAllReadRequest{BookingID: bookingID, Scope: scope}).
		Put("/api/support/messages/read-all")
	if err := c.decode(resp, err, nil); err != nil {
		return err
	}

	c.cache.Invalidate(messagesKey(bookingID))
	return nil
}

// MessageGroup is one calendar day of a thread, ordered oldest first.
type MessageGroup struct {
	Date     string
	Messages []response.MessageResponse
}

// GroupedByDate buckets messages by the calendar date of CreatedAt, groups
// ordered chronologically.
func GroupedByDate(messages []response.MessageResponse) []MessageGroup {
	buckets := make(map[string][]response.MessageResponse)
	for _, m := range messages {
		date := m.CreatedAt.Format("2006-01-02")
		buckets[date] = append(buckets[date], m)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]MessageGroup, len(dates))
	for i, date := range dates {
		groups[i] = MessageGroup{Date: date, Messages: buckets[date]}
	}
	return groups
}

// ConnectionStatus reflects whether the last poll tick reached the server.
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
)

const defaultPollInterval = 3000 * time.Millisecond

// Poller delivers a booking's thread on a fixed interval. Chat has no push
// transport; polling against the messages endpoint is the update mechanism.
type Poller struct {
	client    *Client
	bookingID string
	scope     string
	interval  time.Duration

	mu     sync.RWMutex
	status ConnectionStatus

	// OnUpdate receives the full thread after each successful tick.
	OnUpdate func(groups []MessageGroup)
	// OnStatusChange fires on connected/disconnected transitions only.
	OnStatusChange func(status ConnectionStatus)
}

// NewPoller builds a poller for one booking thread. A non-positive interval
// falls back to the 3000ms default.
func (c *Client) NewPoller(bookingID, scope string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		client:    c,
		bookingID: bookingID,
		scope:     scope,
		interval:  interval,
		status:    StatusConnected,
	}
}

// Status returns the connection state as of the last tick.
func (p *Poller) Status() ConnectionStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

func (p *Poller) setStatus(status ConnectionStatus) {
	p.mu.Lock()
	changed := p.status != status
	p.status = status
	p.mu.Unlock()

	if changed && p.OnStatusChange != nil {
		p.OnStatusChange(status)
	}
}

// Run polls until ctx is cancelled. The first fetch happens immediately,
// then every interval.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	messages, err := p.client.Messages(ctx, p.bookingID, p.scope)
	if err != nil {
		p.client.log.Warn("Message poll failed",
			zap.Error(err),
			zap.String("booking_id", p.bookingID))
		p.setStatus(StatusDisconnected)
		return
	}

	p.setStatus(StatusConnected)
	if p.OnUpdate != nil {
		p.OnUpdate(GroupedByDate(messages))
	}
}
