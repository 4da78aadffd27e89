package client

import (
	"context"
	"strconv"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
)

var flightsKey = Key{Resource: ResourceFlights}

// Flights returns the published flights, served from cache when warm.
func (c *Client) Flights(ctx context.Context) ([]response.FlightResponse, error) {
	if cached, ok := CachedList[response.FlightResponse](c.cache, flightsKey); ok {
		return cached, nil
	}
	return c.refetchFlights(ctx)
}

// refetchFlights bypasses the cache and replaces it with fresh data.
func (c *Client) refetchFlights(ctx context.Context) ([]response.FlightResponse, error) {
	var flights []response.FlightResponse
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/flights")
	if err := c.decode(resp, err, &flights); err != nil {
		c.notifyError(err)
		return nil, err
	}

	c.cache.Set(flightsKey, flights)
	return flights, nil
}

// ResolveFlight asks the server which flight serves the route and dates.
func (c *Client) ResolveFlight(ctx context.Context, req request.ResolveFlightRequest) (*response.FlightResponse, error) {
	var flight response.FlightResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/flights/resolve")
	if err := c.decode(resp, err, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// Tours returns the published tour catalogue page.
func (c *Client) Tours(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.TourResponse], error) {
	var tours response.PaginatedResponse[response.TourResponse]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage)).
		Get("/api/tours")
	if err := c.decode(resp, err, &tours); err != nil {
		c.notifyError(err)
		return nil, err
	}
	return &tours, nil
}
