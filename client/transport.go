package client

import (
	"context"
	"strconv"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"

	"github.com/google/uuid"
)

var transportBookingsKey = Key{Resource: ResourceTransportBookings}

func transportID(b response.TransportBookingResponse) string { return b.ID }

// TransportBookings returns the caller's group-transport bookings.
func (c *Client) TransportBookings(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.TransportBookingResponse], error) {
	var bookings response.PaginatedResponse[response.TransportBookingResponse]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage)).
		Get("/api/client/transport-bookings")
	if err := c.decode(resp, err, &bookings); err != nil {
		c.notifyError(err)
		return nil, err
	}

	if page == 1 {
		c.cache.Set(transportBookingsKey, bookings.Data)
	}
	return &bookings, nil
}

// pendingTransport builds the placeholder record shown while the create
// request is in flight. The temp id is a fresh uuid so it can never collide
// with a server-issued one.
func pendingTransport(tempID string, req request.CreateTransportBookingRequest) response.TransportBookingResponse {
	segments := make([]response.TransportSegmentResponse, len(req.Segments))
	for i, in := range req.Segments {
		direction := entity.DirectionReturn
		if i == 0 {
			direction = entity.DirectionForward
		}
		if in.Direction != nil {
			direction = entity.SegmentDirection(*in.Direction)
		}
		segments[i] = response.TransportSegmentResponse{
			ID:            uuid.New().String(),
			Direction:     direction,
			DepartureDate: in.DepartureDate,
			FlightNumber:  in.FlightNumber,
			From:          in.From,
			To:            in.To,
			Passengers:    in.Passengers.Normalize(),
		}
	}

	return response.TransportBookingResponse{
		ID:         tempID,
		Status:     entity.BookingStatusPending,
		StatusMeta: entity.BookingStatusPending.Meta(),
		Notes:      req.Notes,
		Segments:   segments,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// CreateTransportBooking inserts a PENDING placeholder into the cached list
// immediately, then swaps it for the server record on success. On failure
// the snapshot restore removes the placeholder without leaving residue.
func (c *Client) CreateTransportBooking(ctx context.Context, req request.CreateTransportBookingRequest) (*response.TransportBookingResponse, error) {
	tempID := uuid.New().String()
	var booking response.TransportBookingResponse

	err := c.optimistic(
		[]Key{transportBookingsKey},
		func() {
			Prepend(c.cache, transportBookingsKey, pendingTransport(tempID, req))
		},
		func() error {
			resp, err := c.http.R().
				SetContext(ctx).
				SetBody(req).
				Post("/api/client/transport-bookings")
			return c.decode(resp, err, &booking)
		},
	)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}

	if !ReplaceByID(c.cache, transportBookingsKey, tempID, booking, transportID) {
		Prepend(c.cache, transportBookingsKey, booking)
	}
	return &booking, nil
}

// CancelTransportBooking mirrors the other cancel flows.
func (c *Client) CancelTransportBooking(ctx context.Context, id string) (*response.TransportBookingResponse, error) {
	var booking response.TransportBookingResponse

	err := c.optimistic(
		[]Key{transportBookingsKey},
		func() {
			if cached, ok := CachedList[response.TransportBookingResponse](c.cache, transportBookingsKey); ok {
				for _, b := range cached {
					if b.ID == id {
						b.Status = entity.BookingStatusCancelled
						b.StatusMeta = entity.BookingStatusCancelled.Meta()
						ReplaceByID(c.cache, transportBookingsKey, id, b, transportID)
						break
					}
				}
			}
		},
		func() error {
			resp, err := c.http.R().
				SetContext(ctx).
				Put("/api/client/transport-bookings/" + id + "/cancel")
			return c.decode(resp, err, &booking)
		},
	)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}

	ReplaceByID(c.cache, transportBookingsKey, id, booking, transportID)
	return &booking, nil
}
