package handlers

import (
	"net/http"
	"subway-path-service/internal/api/dto"
	"subway-path-service/internal/platform/obs"
	"subway-path-service/internal/ports"

	"github.com/rs/zerolog/log"
)

// LineHandler exposes the read-only line catalog.
type LineHandler struct {
	Repo ports.LineRepository
}

func (h *LineHandler) List(w http.ResponseWriter, r *http.Request) {
	lines, err := h.Repo.ListLines(r.Context())
	if err != nil {
		log.Error().Err(err).Str("req_id", obs.RequestID(r.Context())).Msg("list lines failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLinesResponse{Lines: make([]dto.LineResponse, 0, len(lines))}
	for _, l := range lines {
		res.Lines = append(res.Lines, dto.LineResponse{
			ID:            l.ID,
			Name:          l.Name,
			Color:         l.Color,
			SurchargeFare: l.SurchargeFare,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
