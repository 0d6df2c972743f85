package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/expedicoes/internal/app"
	coremission "github.com/example/expedicoes/internal/core/mission"
	"github.com/example/expedicoes/internal/ports/primary"
	"github.com/example/expedicoes/pkg/metrics"
)

// maxBodyBytes caps request bodies; mission records are small.
const maxBodyBytes = 1 << 20

// Operation outcomes reported to metrics.
const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// MissionsHandler serves the mission CRUD and search routes.
type MissionsHandler struct {
	svc     primary.MissionService
	logger  logrus.FieldLogger
	metrics *metrics.Manager
}

// NewMissionsHandler creates a new missions handler.
func NewMissionsHandler(svc primary.MissionService, logger logrus.FieldLogger, m *metrics.Manager) *MissionsHandler {
	return &MissionsHandler{svc: svc, logger: logger, metrics: m}
}

// createRequest mirrors the POST /missao body. Pointers keep absent keys
// distinguishable from empty strings.
type createRequest struct {
	Nome            *string  `json:"nome"`
	DataLancamento  *string  `json:"data_lancamento"`
	Destino         *string  `json:"destino"`
	EstadoMissao    *string  `json:"estado_missao"`
	Tripulacao      *string  `json:"tripulacao"`
	CargaUtil       *string  `json:"carga_util"`
	Duracao         *string  `json:"duracao"`
	Custo           *float64 `json:"custo"`
	StatusDetalhado *string  `json:"status_detalhado"`
}

func (c createRequest) toServiceRequest() primary.CreateMissionRequest {
	return primary.CreateMissionRequest{
		Name:           c.Nome,
		LaunchDate:     c.DataLancamento,
		Destination:    c.Destino,
		State:          c.EstadoMissao,
		Crew:           c.Tripulacao,
		Payload:        c.CargaUtil,
		Duration:       c.Duracao,
		Cost:           c.Custo,
		DetailedStatus: c.StatusDetalhado,
	}
}

// HandleCreate handles POST /missao.
func (h *MissionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := decodeObject(w, r, &body); err != nil {
		h.record("create", outcomeInvalid)
		writeInternalError(w, r, h.logger, fmt.Errorf("decode create body: %w", err))
		return
	}

	mission, err := h.svc.CreateMission(r.Context(), body.toServiceRequest())
	switch {
	case errors.Is(err, app.ErrInvalidDate):
		h.record("create", outcomeInvalid)
		writeMessage(w, http.StatusBadRequest, msgBadDateFormat)
		return
	case errors.Is(err, app.ErrMissingField):
		// Missing required fields keep the generic 500 contract.
		h.record("create", outcomeInvalid)
		writeInternalError(w, r, h.logger, err)
		return
	case err != nil:
		h.record("create", outcomeError)
		writeInternalError(w, r, h.logger, err)
		return
	}

	h.record("create", outcomeOK)
	writeJSON(w, http.StatusOK, serializeMission(mission))
}

// HandleList handles GET /missoes.
func (h *MissionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	missions, err := h.svc.ListMissions(r.Context())
	if err != nil {
		h.record("list", outcomeError)
		writeInternalError(w, r, h.logger, err)
		return
	}
	h.record("list", outcomeOK)
	writeJSON(w, http.StatusOK, serializeMissions(missions))
}

// HandleGet handles GET /missao/{id}.
func (h *MissionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := missionID(r)
	if !ok {
		h.record("get", outcomeNotFound)
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}

	mission, err := h.svc.GetMission(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, r, "get", err)
		return
	}
	h.record("get", outcomeOK)
	writeJSON(w, http.StatusOK, serializeMission(mission))
}

// HandleSearch handles GET /missoes/pesquisa?data_inicio=&data_fim=.
func (h *MissionsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("data_inicio"), q.Get("data_fim")
	if from == "" || to == "" {
		h.record("search", outcomeInvalid)
		writeMessage(w, http.StatusBadRequest, msgMissingDates)
		return
	}

	missions, err := h.svc.SearchMissions(r.Context(), primary.SearchMissionsRequest{From: from, To: to})
	switch {
	case errors.Is(err, app.ErrInvalidDate):
		h.record("search", outcomeInvalid)
		writeMessage(w, http.StatusBadRequest, msgBadDateFormat)
		return
	case err != nil:
		h.record("search", outcomeError)
		writeInternalError(w, r, h.logger, err)
		return
	}

	h.record("search", outcomeOK)
	writeJSON(w, http.StatusOK, serializeMissions(missions))
}

// HandleUpdate handles PUT /missao/{id}.
func (h *MissionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := missionID(r)
	if !ok {
		h.record("update", outcomeNotFound)
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}

	var patch coremission.Patch
	if err := decodeObject(w, r, &patch); err != nil {
		// An absent mission still answers 404 whatever the body.
		if _, getErr := h.svc.GetMission(r.Context(), id); getErr != nil {
			h.writeLookupError(w, r, "update", getErr)
			return
		}
		requestLogger(h.logger, r).WithError(err).Debug("rejecting update body")
		h.record("update", outcomeInvalid)
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	mission, err := h.svc.UpdateMission(r.Context(), primary.UpdateMissionRequest{MissionID: id, Patch: patch})
	switch {
	case errors.Is(err, app.ErrInvalidRequest):
		h.record("update", outcomeInvalid)
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	case errors.Is(err, app.ErrInvalidDate):
		h.record("update", outcomeInvalid)
		writeMessage(w, http.StatusBadRequest, msgBadDateFormat)
		return
	case err != nil:
		h.writeLookupError(w, r, "update", err)
		return
	}

	h.record("update", outcomeOK)
	writeJSON(w, http.StatusOK, serializeMission(mission))
}

// HandleDelete handles DELETE /missao/{id}.
func (h *MissionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := missionID(r)
	if !ok {
		h.record("delete", outcomeNotFound)
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.svc.DeleteMission(r.Context(), id); err != nil {
		h.writeLookupError(w, r, "delete", err)
		return
	}
	h.record("delete", outcomeOK)
	writeMessage(w, http.StatusOK, msgDeleted)
}

// writeLookupError maps not-found to 404 and everything else to 500.
func (h *MissionsHandler) writeLookupError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, app.ErrMissionNotFound) {
		h.record(op, outcomeNotFound)
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}
	h.record(op, outcomeError)
	writeInternalError(w, r, h.logger, err)
}

func (h *MissionsHandler) record(op, outcome string) {
	if h.metrics != nil {
		h.metrics.RecordMissionOperation(op, outcome)
	}
}

func missionID(r *http.Request) (int64, bool) {
	return coremission.ParseMissionID(mux.Vars(r)["id"])
}

var errNotObject = errors.New("request body must be a JSON object")

// decodeObject accepts only a JSON object body. A bare null would otherwise
// decode into a struct as a silent no-op.
func decodeObject(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return errNotObject
	}
	return json.Unmarshal(raw, dst)
}
