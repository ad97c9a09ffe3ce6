package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/rohits-web03/voxdesk/internal/models"
	"github.com/rohits-web03/voxdesk/internal/utils"
)

type agentRequest struct {
	Name               string            `json:"name" validate:"notblank,max=255"`
	Description        string            `json:"description"`
	CallType           string            `json:"callType" validate:"required,oneof=inbound outbound"`
	Language           string            `json:"language" validate:"required"`
	Voice              string            `json:"voice" validate:"required"`
	Prompt             string            `json:"prompt" validate:"required"`
	Model              string            `json:"model" validate:"required"`
	Latency            float64           `json:"latency" validate:"gte=0.3,lte=1"`
	Speed              float64           `json:"speed" validate:"gte=90,lte=130"`
	CallScript         string            `json:"callScript"`
	ServiceDescription string            `json:"serviceDescription"`
	Attachments        []string          `json:"attachments" validate:"dive,uuid"`
	Tools              models.AgentTools `json:"tools"`
}

func (req agentRequest) apply(a *models.Agent) {
	a.Name = strings.TrimSpace(req.Name)
	a.Description = req.Description
	a.CallType = req.CallType
	a.Language = req.Language
	a.Voice = req.Voice
	a.Prompt = req.Prompt
	a.Model = req.Model
	a.Latency = req.Latency
	a.Speed = req.Speed
	a.CallScript = req.CallScript
	a.ServiceDescription = req.ServiceDescription
	a.Attachments = req.Attachments
	if a.Attachments == nil {
		a.Attachments = []string{}
	}
	a.Tools = req.Tools
}

// GET /api/v1/agents
// ListAgents godoc
// @Summary List agents
// @Tags Agents
// @Produce json
// @Success 200 {array} models.Agent
// @Router /api/v1/agents [get]
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.catalog.ListAgents(r.Context())
	if err != nil {
		log.Printf("list agents: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to fetch agents")
		return
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	utils.WriteJSON(w, http.StatusOK, agents)
}

// POST /api/v1/agents
// CreateAgent godoc
// @Summary Create an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param agent body agentRequest true "Agent configuration"
// @Success 201 {object} models.Agent
// @Failure 400 {object} utils.Payload
// @Router /api/v1/agents [post]
func (h *Handler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var input agentRequest
	if !h.decode(w, r, &input) {
		return
	}

	var agent models.Agent
	input.apply(&agent)
	if err := h.catalog.CreateAgent(r.Context(), &agent); err != nil {
		log.Printf("create agent: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to create agent")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, agent)
}

// GET /api/v1/agents/{id}
// GetAgent godoc
// @Summary Get an agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} models.Agent
// @Failure 404 {object} utils.Payload
// @Router /api/v1/agents/{id} [get]
func (h *Handler) GetAgent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	agent, err := h.catalog.GetAgent(r.Context(), id)
	if err != nil {
		writeLookupError(w, err, "Agent not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, agent)
}

// PUT /api/v1/agents/{id}
// UpdateAgent godoc
// @Summary Replace an agent's configuration
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param agent body agentRequest true "Agent configuration"
// @Success 200 {object} models.Agent
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/agents/{id} [put]
func (h *Handler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input agentRequest
	if !h.decode(w, r, &input) {
		return
	}

	agent := models.Agent{ID: id}
	input.apply(&agent)
	if err := h.catalog.UpdateAgent(r.Context(), &agent); err != nil {
		writeLookupError(w, err, "Agent not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, agent)
}
