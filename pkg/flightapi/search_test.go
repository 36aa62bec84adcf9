package flightapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
	"flywise-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func testQuery() *models.FlightSearchQuery {
	return &models.FlightSearchQuery{
		DepartureAirportCode: "AMS",
		ArrivalAirportCode:   "LIS",
		DepartureDate:        "2026-09-10",
		ArrivalDate:          "2026-09-17",
		Adults:               "2",
		Children:             "1",
		Infants:              "0",
		CabinClass:           "Economy",
		Currency:             "EUR",
	}
}

func TestSearchRoundTrip_BuildsVendorPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, "{}")
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret-key")
	if _, err := client.SearchRoundTrip(context.Background(), testQuery()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/roundtrip/secret-key/AMS/LIS/2026-09-10/2026-09-17/2/1/0/Economy/EUR"
	if gotPath != want {
		t.Errorf("expected path %q, got %q", want, gotPath)
	}
}

func TestSearchOneWay_OmitsReturnDate(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, "{}")
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret-key")
	if _, err := client.SearchOneWay(context.Background(), testQuery()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/onewaytrip/secret-key/AMS/LIS/2026-09-10/2/1/0/Economy/EUR"
	if gotPath != want {
		t.Errorf("expected path %q, got %q", want, gotPath)
	}
}

func TestSearch_EscapesPathSegments(t *testing.T) {
	var gotRawPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		io.WriteString(w, "{}")
	}))
	defer server.Close()

	q := testQuery()
	q.CabinClass = "Premium Economy"
	client := NewClient(server.URL+"/", "secret-key")
	if _, err := client.SearchOneWay(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/onewaytrip/secret-key/AMS/LIS/2026-09-10/2/1/0/Premium%20Economy/EUR"
	if gotRawPath != want {
		t.Errorf("expected escaped path %q, got %q", want, gotRawPath)
	}
}

func TestSearch_NonSuccessStatusBecomesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"message": "rate limited"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret-key")
	_, err := client.SearchRoundTrip(context.Background(), testQuery())

	var upstreamErr *apperrors.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected an upstream error, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected vendor status 429, got %d", upstreamErr.StatusCode)
	}
	if upstreamErr.Body != `{"message": "rate limited"}` {
		t.Errorf("expected raw vendor body, got %q", upstreamErr.Body)
	}
}

func TestSearch_UnreachableVendorBecomes502(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL+"/", "secret-key")
	_, err := client.SearchRoundTrip(context.Background(), testQuery())

	var upstreamErr *apperrors.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected an upstream error, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502 for an unreachable vendor, got %d", upstreamErr.StatusCode)
	}
}

func TestSearch_CanceledContextReturnsContextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL+"/", "secret-key")
	_, err := client.SearchRoundTrip(ctx, testQuery())

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSearch_DecodesVendorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"itineraries": [{"id": 42, "leg_ids": [7], "cheapest_price": {"amount": "120.50"}}],
			"legs": [{"id": 7, "duration": 90}],
			"currency": "USD"
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret-key")
	resp, err := client.SearchRoundTrip(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Itineraries) != 1 || resp.Itineraries[0].ID.String() != "42" {
		t.Errorf("unexpected itineraries %+v", resp.Itineraries)
	}
	if len(resp.Legs) != 1 || resp.Legs[0].ID.String() != "7" {
		t.Errorf("unexpected legs %+v", resp.Legs)
	}
	if resp.Currency != "USD" {
		t.Errorf("expected response currency USD, got %q", resp.Currency)
	}
}

func TestDecodeTrackingBody(t *testing.T) {
	list, err := decodeTrackingBody([]byte(` [{"flightNumber": "KL1697"}] `))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].FlightNumber != "KL1697" {
		t.Errorf("unexpected list %+v", list)
	}

	single, err := decodeTrackingBody([]byte(`{"flightNumber": "KL1697"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(single) != 1 || single[0].FlightNumber != "KL1697" {
		t.Errorf("expected single object wrapped in a list, got %+v", single)
	}

	if _, err := decodeTrackingBody([]byte(`not json`)); err == nil {
		t.Error("expected an error for malformed tracking body")
	}
}
