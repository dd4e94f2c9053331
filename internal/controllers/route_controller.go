package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"tara_na/internal/models"
	"tara_na/internal/store"
	"tara_na/internal/validation"
)

// RouteResponse mirrors models.Route with the polyline rendered as a
// GeoJSON string for API output, null when the route carries none.
type RouteResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	LGU      string  `json:"lgu"`
	Polyline *string `json:"polyline"`
}

type RouteController struct {
	store store.Store
}

func NewRouteController(s store.Store) *RouteController {
	return &RouteController{store: s}
}

// toRouteResponse converts a models.Route to a RouteResponse
func toRouteResponse(route models.Route) RouteResponse {
	resp := RouteResponse{
		ID:   route.ID,
		Name: route.Name,
		Type: route.Type,
		LGU:  route.LGU,
	}
	if len(route.Polyline) > 0 {
		geojson, err := convertWKBToGeoJSON(route.Polyline)
		if err != nil {
			logrus.WithError(err).WithField("route_id", route.ID).Warn("route polyline is not valid WKB")
			return resp
		}
		resp.Polyline = &geojson
	}
	return resp
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ListRoutes returns routes, optionally narrowed by lgu and type.
func (ctl *RouteController) ListRoutes(c *gin.Context) {
	query, errs := validation.RouteList(c.Request.URL.Query())
	if len(errs) > 0 {
		logrus.WithField("fields", errs).Warn("ListRoutes: invalid query")
		respondValidation(c, errs)
		return
	}

	routes, err := ctl.store.ListRoutes(c.Request.Context(), store.RouteFilter{
		LGU:  query.LGU,
		Type: query.Type,
	})
	if err != nil {
		logrus.WithError(err).Error("ListRoutes: backend failure")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, toRouteResponse(r))
	}
	respondData(c, http.StatusOK, resp)
}

// ListRouteStops returns the stops of one route, 404 when the route
// itself does not exist. A route with zero stops is a valid empty list.
func (ctl *RouteController) ListRouteStops(c *gin.Context) {
	routeID := c.Param("id")

	stops, err := ctl.store.ListRouteStops(c.Request.Context(), routeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Route not found")
			return
		}
		logrus.WithError(err).Error("ListRouteStops: backend failure")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, stops)
}
