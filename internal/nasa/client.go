// Package nasa fetches public astronomical data: the NASA near-earth object
// feed and the JPL small-body database. Failures are wrapped in
// common.ErrRemoteFetch and reported to the user, never propagated as a crash.
package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/dmitrijs2005/spacedata/internal/common"
	"github.com/dmitrijs2005/spacedata/internal/config"
	"github.com/dmitrijs2005/spacedata/internal/logging"
)

// Client is the HTTP gateway to the remote data APIs.
type Client struct {
	httpClient *http.Client
	neoURL     string
	sbdbURL    string
	apiKey     string
	log        logging.Logger
}

// NewClient builds a Client from cfg. The default http.Client is used; the
// application has no cancellation or timeout semantics, a fetch runs to
// completion or failure.
func NewClient(cfg *config.Config, log logging.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		neoURL:     cfg.NEOEndpointAddr,
		sbdbURL:    cfg.SBDBEndpointAddr,
		apiKey:     cfg.APIKey,
		log:        log,
	}
}

// FetchNEOFeed returns the close-approach records for the given date range
// (inclusive, YYYY-MM-DD), sorted by date then name.
func (c *Client) FetchNEOFeed(ctx context.Context, startDate, endDate string) ([]NearEarthObject, error) {
	params := url.Values{}
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	params.Set("api_key", c.apiKey)

	var feed neoFeedResponse
	if err := c.getJSON(ctx, c.neoURL, params, &feed); err != nil {
		return nil, err
	}

	var objects []NearEarthObject
	for date, list := range feed.NearEarthObjects {
		for _, obj := range list {
			rec := NearEarthObject{
				Name:              obj.Name,
				CloseApproachDate: date,
				EstDiameterMaxM:   obj.EstimatedDiameter.Meters.EstimatedDiameterMax,
				Hazardous:         obj.Hazardous,
			}
			if len(obj.CloseApproachData) > 0 {
				ca := obj.CloseApproachData[0]
				rec.CloseApproachDate = ca.CloseApproachDate
				rec.VelocityKmh = ca.RelativeVelocity.KilometersPerHour
				rec.MissDistanceKm = ca.MissDistance.Kilometers
			}
			objects = append(objects, rec)
		}
	}

	sort.Slice(objects, func(i, j int) bool {
		if objects[i].CloseApproachDate != objects[j].CloseApproachDate {
			return objects[i].CloseApproachDate < objects[j].CloseApproachDate
		}
		return objects[i].Name < objects[j].Name
	})

	c.log.Debug(ctx, "neo feed fetched", "objects", len(objects))
	return objects, nil
}

// FetchSmallBody looks up one solar-system object by designation (e.g.
// "Ceres") in the small-body database.
func (c *Client) FetchSmallBody(ctx context.Context, designation string) (*SmallBody, error) {
	params := url.Values{}
	params.Set("sstr", designation)

	var resp sbdbResponse
	if err := c.getJSON(ctx, c.sbdbURL, params, &resp); err != nil {
		return nil, err
	}

	discoveryDate := resp.Object.Disc
	if discoveryDate == "" {
		discoveryDate = "N/A"
	}

	body := &SmallBody{
		FullName:        resp.Object.FullName,
		SpkID:           resp.Object.SpkID,
		Designation:     resp.Object.Des,
		DiscoveryDate:   discoveryDate,
		SemiMajorAxisAU: lookupValue(resp.Orbit.Elements, "a", "N/A"),
		Eccentricity:    lookupValue(resp.Orbit.Elements, "e", "N/A"),
		InclinationDeg:  lookupValue(resp.Orbit.Elements, "i", "N/A"),
		DiameterKm:      lookupValue(resp.PhysPar, "diameter", "Unknown"),
	}

	c.log.Debug(ctx, "small body fetched", "designation", designation, "fullname", body.FullName)
	return body, nil
}

// getJSON performs a GET with the given query parameters and decodes the
// JSON response into out.
func (c *Client) getJSON(ctx context.Context, baseURL string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRemoteFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", common.ErrRemoteFetch, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrRemoteFetch, err)
	}
	return nil
}
