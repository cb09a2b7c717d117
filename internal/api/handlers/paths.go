package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"subway-path-service/internal/api/dto"
	"subway-path-service/internal/domain"
	"subway-path-service/internal/platform/obs"
	"subway-path-service/internal/ports"
	"subway-path-service/internal/services"

	"github.com/rs/zerolog/log"
)

const maxQuoteStations = 256

type PathHandler struct {
	Repo   ports.SectionRepository
	Policy domain.FarePolicy
}

// Quote prices a journey over an already-chosen stop sequence.
func (h *PathHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuotePathRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Age == nil {
		writeError(w, r, http.StatusBadRequest, "age is required")
		return
	}
	if len(req.StationIDs) < 2 {
		writeError(w, r, http.StatusBadRequest, "station_ids must list at least two stations")
		return
	}
	if len(req.StationIDs) > maxQuoteStations {
		writeError(w, r, http.StatusBadRequest, "station_ids lists too many stations")
		return
	}

	quote, err := services.QuotePath(
		r.Context(),
		services.QuotePathRequest{StationIDs: req.StationIDs, Age: *req.Age},
		h.Repo,
		h.Policy,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument),
			errors.Is(err, domain.ErrInvalidRoute),
			errors.Is(err, ports.ErrSectionNotFound):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			log.Error().Err(err).Str("req_id", obs.RequestID(r.Context())).Msg("quote path failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.QuotePathResponse{
		Stations: make([]dto.StationResponse, 0, len(quote.Stations)),
		Lines:    make([]dto.LineResponse, 0, len(quote.Lines)),
		Distance: quote.Distance,
		Duration: quote.Duration,
		Fare:     quote.Breakdown.Fare,
		Breakdown: dto.FareBreakdownResponse{
			DistanceFare: quote.Breakdown.DistanceFare,
			Surcharge:    quote.Breakdown.Surcharge,
			PreDiscount:  quote.Breakdown.PreDiscount,
			AgeGroup:     string(quote.Breakdown.AgeGroup),
		},
	}
	for _, s := range quote.Stations {
		res.Stations = append(res.Stations, dto.StationResponse{ID: s.ID, Name: s.Name})
	}
	for _, l := range quote.Lines {
		res.Lines = append(res.Lines, dto.LineResponse{
			ID:            l.ID,
			Name:          l.Name,
			Color:         l.Color,
			SurchargeFare: l.SurchargeFare,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
