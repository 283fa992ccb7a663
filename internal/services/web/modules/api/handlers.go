package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	platformotel "github.com/louisbranch/gmscreen/internal/platform/otel"
	"github.com/louisbranch/gmscreen/internal/rules/filter"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
)

var tracer = platformotel.Tracer("services/web/api")

// maxRollBody bounds the dice roll request body.
const maxRollBody = 4 << 10

// RollRequest is the body of POST /api/dice/roll.
type RollRequest struct {
	Notation string `json:"notation"`
	Seed     *int64 `json:"seed,omitempty"`
}

// CategoriesResponse lists facet counts per published category.
type CategoriesResponse struct {
	Categories []filter.Facet `json:"categories"`
}

type handlers struct {
	rules  *lookup.Service
	roller coredice.Roller
}

func newHandlers(rules *lookup.Service, roller coredice.Roller) handlers {
	return handlers{rules: rules, roller: roller}
}

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := filter.StateFromValues(query)
	result, err := h.rules.Search(httpx.RequestContext(r), lookup.SearchRequest{
		Category:     state.Category,
		Query:        state.Query,
		QuickRefOnly: state.QuickRefOnly,
		Filter:       query.Get("filter"),
	})
	if err != nil {
		_ = httpx.WriteJSONAppError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, result)
}

func (h handlers) handleRule(w http.ResponseWriter, r *http.Request) {
	detail, err := h.rules.Get(httpx.RequestContext(r), r.PathValue("id"))
	if err != nil {
		_ = httpx.WriteJSONAppError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, detail)
}

func (h handlers) handleCategories(w http.ResponseWriter, r *http.Request) {
	state := filter.StateFromValues(r.URL.Query())
	_ = httpx.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: h.rules.Categories(state.QuickRefOnly)})
}

func (h handlers) handleDiceRoll(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(httpx.RequestContext(r), "dice.roll")
	defer span.End()

	req, err := decodeRollRequest(http.MaxBytesReader(w, r.Body, maxRollBody))
	if err != nil {
		_ = httpx.WriteJSONAppError(w, err)
		return
	}
	roll, err := h.roller.Roll(req.Notation, req.Seed)
	if err != nil {
		if coredice.IsInputError(err) {
			err = apperrors.Wrap(apperrors.KindInvalidInput, "error.dice_notation", err)
		} else {
			err = apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
		}
		_ = httpx.WriteJSONAppError(w, err)
		return
	}
	span.SetAttributes(attribute.String("dice.notation", roll.Expression), attribute.Int("dice.total", roll.Total))
	_ = httpx.WriteJSON(w, http.StatusOK, roll)
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func decodeRollRequest(body io.Reader) (RollRequest, error) {
	var req RollRequest
	if body == nil {
		return req, apperrors.EK(apperrors.KindInvalidInput, "error.dice_notation", "request body is required")
	}
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, apperrors.EK(apperrors.KindInvalidInput, "error.dice_notation", "request body is required")
		}
		return req, apperrors.EK(apperrors.KindInvalidInput, "error.dice_notation", fmt.Sprintf("decode request: %v", err))
	}
	return req, nil
}
