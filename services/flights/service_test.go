package flights_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyago/models"
	"voyago/services/flights"
)

type fakeClient struct {
	list    *models.OfferList
	err     error
	pingErr error
	queries []flights.SearchQuery
}

func (f *fakeClient) Search(_ context.Context, q flights.SearchQuery) (*models.OfferList, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func offerList(n int) *models.OfferList {
	list := &models.OfferList{}
	for i := 0; i < n; i++ {
		list.Data = append(list.Data, models.FlightOffer{
			ID:    string(rune('1' + i)),
			Price: models.OfferPrice{Currency: "USD", GrandTotal: "250.00"},
			Itineraries: []models.Itinerary{{
				Duration: "PT5H30M",
				Segments: []models.Segment{{
					Departure:   models.FlightPoint{IataCode: "JFK", At: "2025-12-20T08:00:00"},
					Arrival:     models.FlightPoint{IataCode: "LAX", At: "2025-12-20T11:30:00"},
					CarrierCode: "DL",
					Number:      "100",
				}},
			}},
		})
	}
	return list
}

func query() flights.SearchQuery {
	return flights.SearchQuery{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-20",
		Adults:        1,
		MaxResults:    10,
	}
}

func TestSearch_Found(t *testing.T) {
	client := &fakeClient{list: offerList(3)}
	svc := &flights.DefaultOfferService{Client: client, Logger: zap.NewNop()}

	result, err := svc.Search(context.Background(), query())
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Len(t, result.Offers, 3)
	assert.Contains(t, result.Summary, "## Available Flight Options")
	assert.Contains(t, result.Summary, "Option 1")
	assert.Contains(t, result.Summary, "Nonstop")
	assert.Contains(t, result.Summary, "5h 30m")
}

func TestSearch_NoOffers(t *testing.T) {
	client := &fakeClient{list: &models.OfferList{}}
	svc := &flights.DefaultOfferService{Client: client, Logger: zap.NewNop()}

	result, err := svc.Search(context.Background(), query())
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Contains(t, result.Summary, "No flights found for JFK to LAX on 2025-12-20")
}

func TestSearch_UpstreamError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := &flights.DefaultOfferService{Client: client, Logger: zap.NewNop()}

	_, err := svc.Search(context.Background(), query())
	require.Error(t, err)

	var upstreamErr *flights.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestSearch_VerifiedPricesSupersedeSummary(t *testing.T) {
	client := &fakeClient{list: offerList(3)}
	pricer := &fakeClient{list: offerList(2)}
	svc := &flights.DefaultOfferService{Client: client, Pricer: pricer, Logger: zap.NewNop()}

	result, err := svc.Search(context.Background(), query())
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Contains(t, result.Summary, "## Verified Flight Prices")
	assert.NotContains(t, result.Summary, "## Available Flight Options")

	// The verification pass caps its result count.
	require.Len(t, pricer.queries, 1)
	assert.Equal(t, 5, pricer.queries[0].MaxResults)
}

func TestSearch_VerificationFailureKeepsRawSummary(t *testing.T) {
	client := &fakeClient{list: offerList(3)}
	pricer := &fakeClient{err: errors.New("rate limited")}
	svc := &flights.DefaultOfferService{Client: client, Pricer: pricer, Logger: zap.NewNop()}

	result, err := svc.Search(context.Background(), query())
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Contains(t, result.Summary, "## Available Flight Options")
}

func TestSelect(t *testing.T) {
	svc := &flights.DefaultOfferService{Logger: zap.NewNop()}
	offers := offerList(3).Data

	offer, confirmation, err := svc.Select(offers, 2)
	require.NoError(t, err)
	assert.Equal(t, offers[1].ID, offer.ID)
	assert.Contains(t, confirmation, "selected flight option 2")
	assert.Contains(t, confirmation, "250.00 USD")
}

func TestSelect_OutOfRange(t *testing.T) {
	svc := &flights.DefaultOfferService{Logger: zap.NewNop()}
	offers := offerList(3).Data

	for _, idx := range []int{0, -1, 4} {
		_, _, err := svc.Select(offers, idx)
		require.Error(t, err, "index %d", idx)

		var selErr *flights.SelectionError
		require.ErrorAs(t, err, &selErr)
		assert.Contains(t, selErr.Error(), "between 1 and 3")
	}
}

func TestSelect_EmptyBatch(t *testing.T) {
	svc := &flights.DefaultOfferService{Logger: zap.NewNop()}

	_, _, err := svc.Select(nil, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search for flights first")
}

func TestFormatVerifiedPrices_Truncation(t *testing.T) {
	list := offerList(8)
	out := flights.FormatVerifiedPrices(list)
	assert.Contains(t, out, "*Showing top 5 of 8 available flights.*")
	assert.NotContains(t, out, "Option 6")
}
