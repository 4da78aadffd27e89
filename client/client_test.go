package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	errors []string
	infos  []string
}

func (n *recordingNotifier) Error(message string) { n.errors = append(n.errors, message) }
func (n *recordingNotifier) Info(message string)  { n.infos = append(n.infos, message) }

func writeEnvelope(w http.ResponseWriter, code int, status bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func TestCharterConflictShowsServerMessageAndRefetchesFlights(t *testing.T) {
	const conflictMessage = "Этот рейс больше недоступен"
	var flightsCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/client/charter-bookings":
			writeEnvelope(w, http.StatusConflict, false, conflictMessage, nil)
		case "/api/flights":
			atomic.AddInt32(&flightsCalls, 1)
			writeEnvelope(w, http.StatusOK, true, "success", []response.FlightResponse{
				{ID: "f2", From: "Москва", To: "Анталья"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, WithNotifier(notifier))

	// Stale flight list in cache before the conflicting write.
	c.Cache().Set(flightsKey, []response.FlightResponse{{ID: "f1"}})

	_, err := c.CreateCharterBooking(context.Background(), request.CreateCharterBookingRequest{
		From: "Москва", To: "Анталья", DateFrom: "2025-06-02", DateTo: "2025-06-09", Passengers: 2,
	})

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Conflict())

	// The server's text reaches the user unchanged.
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, conflictMessage, notifier.errors[0])

	// The stale flights cache was replaced.
	assert.EqualValues(t, 1, atomic.LoadInt32(&flightsCalls))
	flights, ok := CachedList[response.FlightResponse](c.Cache(), flightsKey)
	require.True(t, ok)
	require.Len(t, flights, 1)
	assert.Equal(t, "f2", flights[0].ID)
}

func TestRetriesServerFaultsOnly(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			writeEnvelope(w, http.StatusInternalServerError, false, "boom", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, true, "success", []response.FlightResponse{{ID: "f1"}})
	}))
	defer server.Close()

	c := New(server.URL)
	flights, err := c.Flights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 1)

	// Two retries after the initial attempt.
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeEnvelope(w, http.StatusBadRequest, false, "Validation failed", nil)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Flights(context.Background())

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestCreateTransportBookingRollsBackPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, false, "Validation failed", nil)
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, WithNotifier(notifier))

	existing := response.TransportBookingResponse{ID: "t1", Status: entity.BookingStatusConfirmed}
	c.Cache().Set(transportBookingsKey, []response.TransportBookingResponse{existing})

	adults := 3
	_, err := c.CreateTransportBooking(context.Background(), request.CreateTransportBookingRequest{
		Segments: []request.TransportSegmentInput{
			{
				DepartureDate: "2025-07-01",
				FlightNumber:  "TK 410",
				From:          "Москва",
				To:            "Стамбул",
				Passengers:    request.PassengerCountsInput{Adults: &adults},
			},
		},
	})
	require.Error(t, err)

	// The optimistic placeholder is gone and the prior list is intact.
	list, ok := CachedList[response.TransportBookingResponse](c.Cache(), transportBookingsKey)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "t1", list[0].ID)

	// The failure was surfaced, not swallowed.
	assert.NotEmpty(t, notifier.errors)
}

func TestCancelBookingRollsBackStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, false, "booking is not cancellable", nil)
	}))
	defer server.Close()

	c := New(server.URL, WithNotifier(&recordingNotifier{}))

	booking := response.BookingResponse{ID: "b1", Status: entity.BookingStatusPending}
	c.Cache().Set(bookingsKey, []response.BookingResponse{booking})

	_, err := c.CancelBooking(context.Background(), "b1")
	require.Error(t, err)

	list, ok := CachedList[response.BookingResponse](c.Cache(), bookingsKey)
	require.True(t, ok)
	assert.Equal(t, entity.BookingStatusPending, list[0].Status)
}

func TestCancelBookingCommitsServerRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Booking cancelled", response.BookingResponse{
			ID:         "b1",
			Status:     entity.BookingStatusCancelled,
			StatusMeta: entity.BookingStatusCancelled.Meta(),
		})
	}))
	defer server.Close()

	c := New(server.URL)

	booking := response.BookingResponse{ID: "b1", Status: entity.BookingStatusPending}
	c.Cache().Set(bookingsKey, []response.BookingResponse{booking})

	resp, err := c.CancelBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
	assert.Equal(t, "Отменено", resp.StatusMeta.Label)

	list, _ := CachedList[response.BookingResponse](c.Cache(), bookingsKey)
	assert.Equal(t, entity.BookingStatusCancelled, list[0].Status)
}

func TestWrongShapeResponseIsValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// status 200 but data is an object where a list is expected
		writeEnvelope(w, http.StatusOK, true, "success", map[string]string{"not": "a list"})
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, WithNotifier(notifier))

	_, err := c.Flights(context.Background())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "data")

	// The user sees the localized bad-data text, never the decode detail.
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, invalidDataText, notifier.errors[0])
}

func TestNonJSONResponseIsValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>gateway page</html>"))
	}))
	defer server.Close()

	c := New(server.URL, WithNotifier(&recordingNotifier{}))

	_, err := c.Flights(context.Background())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "response")
}

func TestLogoutDropsPerBookingThreads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Logged out", nil)
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetTokens("access", "refresh")

	c.Cache().Set(messagesKey("b1"), []response.MessageResponse{{ID: "m1"}})
	c.Cache().Set(messagesKey("b2"), []response.MessageResponse{{ID: "m2"}})
	c.Cache().Set(flightsKey, []response.FlightResponse{{ID: "f1"}})

	require.NoError(t, c.Logout(context.Background()))

	_, ok := c.Cache().Get(messagesKey("b1"))
	assert.False(t, ok)
	_, ok = c.Cache().Get(messagesKey("b2"))
	assert.False(t, ok)

	// Public data survives logout.
	_, ok = c.Cache().Get(flightsKey)
	assert.True(t, ok)
}

func TestCanAccessMatchesServerGuards(t *testing.T) {
	assert.True(t, CanAccess("/api/client/bookings", entity.RoleClient))
	assert.False(t, CanAccess("/api/client/bookings", entity.RoleManager))
	assert.True(t, CanAccess("/api/manager/flights", entity.RoleAdmin))
	assert.True(t, CanAccess("/api/support/messages", entity.RoleClient))
	assert.False(t, CanAccess("/api/admin/managers", entity.RoleManager))
}

func TestNetworkErrorClassification(t *testing.T) {
	c := New("http://127.0.0.1:1", WithNotifier(&recordingNotifier{}))

	_, err := c.Flights(context.Background())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}
