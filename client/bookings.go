package client

import (
	"context"
	"errors"
	"strconv"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"

	"go.uber.org/zap"
)

var (
	bookingsKey        = Key{Resource: ResourceBookings}
	charterBookingsKey = Key{Resource: ResourceCharterBookings}
)

func bookingID(b response.BookingResponse) string        { return b.ID }
func charterID(b response.CharterBookingResponse) string { return b.ID }

// Bookings returns the caller's tour bookings, cached per page 1 only; other
// pages always hit the server.
func (c *Client) Bookings(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error) {
	var bookings response.PaginatedResponse[response.BookingResponse]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage)).
		Get("/api/client/bookings")
	if err := c.decode(resp, err, &bookings); err != nil {
		c.notifyError(err)
		return nil, err
	}

	if page == 1 {
		c.cache.Set(bookingsKey, bookings.Data)
	}
	return &bookings, nil
}

// CreateBooking books tour seats and prepends the result to the cached list.
func (c *Client) CreateBooking(ctx context.Context, req request.CreateBookingRequest) (*response.BookingResponse, error) {
	var booking response.BookingResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/client/bookings")
	if err := c.decode(resp, err, &booking); err != nil {
		c.notifyError(err)
		return nil, err
	}

	Prepend(c.cache, bookingsKey, booking)
	return &booking, nil
}

// CancelBooking flips the cached booking to CANCELLED optimistically, then
// confirms with the server; a failure restores the exact previous state.
func (c *Client) CancelBooking(ctx context.Context, id string) (*response.BookingResponse, error) {
	var booking response.BookingResponse

	err := c.optimistic(
		[]Key{bookingsKey},
		func() {
			if cached, ok := CachedList[response.BookingResponse](c.cache, bookingsKey); ok {
				for _, b := range cached {
					if b.ID == id {
						b.Status = entity.BookingStatusCancelled
						b.StatusMeta = entity.BookingStatusCancelled.Meta()
						ReplaceByID(c.cache, bookingsKey, id, b, bookingID)
						break
					}
				}
			}
		},
		func() error {
			resp, err := c.http.R().
				SetContext(ctx).
				Put("/api/client/bookings/" + id + "/cancel")
			return c.decode(resp, err, &booking)
		},
	)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}

	ReplaceByID(c.cache, bookingsKey, id, booking, bookingID)
	return &booking, nil
}

// CreateCharterBooking books the resolved flight. A conflict means the
// flight changed under the client: the server's message is surfaced verbatim
// and the flights cache is refetched so the stale offer disappears.
func (c *Client) CreateCharterBooking(ctx context.Context, req request.CreateCharterBookingRequest) (*response.CharterBookingResponse, error) {
	var booking response.CharterBookingResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/client/charter-bookings")
	if err := c.decode(resp, err, &booking); err != nil {
		var apiErr *ApiError
		if errors.As(err, &apiErr) && apiErr.Conflict() {
			c.notifier.Error(apiErr.Message)
			if _, rerr := c.refetchFlights(ctx); rerr != nil {
				c.log.Warn("Flights refetch after conflict failed", zap.Error(rerr))
			}
			return nil, err
		}
		c.notifyError(err)
		return nil, err
	}

	Prepend(c.cache, charterBookingsKey, booking)
	return &booking, nil
}

// CharterBookings returns the caller's charter bookings.
func (c *Client) CharterBookings(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.CharterBookingResponse], error) {
	var bookings response.PaginatedResponse[response.CharterBookingResponse]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage)).
		Get("/api/client/charter-bookings")
	if err := c.decode(resp, err, &bookings); err != nil {
		c.notifyError(err)
		return nil, err
	}

	if page == 1 {
		c.cache.Set(charterBookingsKey, bookings.Data)
	}
	return &bookings, nil
}

// CancelCharterBooking mirrors CancelBooking for the charter scope.
func (c *Client) CancelCharterBooking(ctx context.Context, id string) (*response.CharterBookingResponse, error) {
	var booking response.CharterBookingResponse

	err := c.optimistic(
		[]Key{charterBookingsKey},
		func() {
			if cached, ok := CachedList[response.CharterBookingResponse](c.cache, charterBookingsKey); ok {
				for _, b := range cached {
					if b.ID == id {
						b.Status = entity.BookingStatusCancelled
						b.StatusMeta = entity.BookingStatusCancelled.Meta()
						ReplaceByID(c.cache, charterBookingsKey, id, b, charterID)
						break
					}
				}
			}
		},
		func() error {
			resp, err := c.http.R().
				SetContext(ctx).
				Put("/api/client/charter-bookings/" + id + "/cancel")
			return c.decode(resp, err, &booking)
		},
	)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}

	ReplaceByID(c.cache, charterBookingsKey, id, booking, charterID)
	return &booking, nil
}

// UpdateBookingStatus is the manager-side transition for tour bookings.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status entity.BookingStatus) (*response.BookingResponse, error) {
	var booking response.BookingResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request.UpdateBookingStatusRequest{Status: string(status)}).
		Put("/api/manager/bookings/" + id + "/status")
	if err := c.decode(resp, err, &booking); err != nil {
		c.notifyError(err)
		return nil, err
	}

	if !ReplaceByID(c.cache, bookingsKey, id, booking, bookingID) {
		c.cache.Invalidate(bookingsKey)
	}
	return &booking, nil
}
