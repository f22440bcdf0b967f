package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/middleware"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/services"
)

// AgentHandler manages B2B agent accounts and their approval workflow
type AgentHandler struct {
	service *services.AgentService
	audit   *services.AuditService
}

func NewAgentHandler(service *services.AgentService, audit *services.AuditService) *AgentHandler {
	return &AgentHandler{service: service, audit: audit}
}

// agentView adds the actions legal for the agent's current status
type agentView struct {
	*models.Agent
	Actions []string `json:"actions"`
}

// List handles GET /api/agents?status=pending
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]agentView, 0, len(agents))
	for _, a := range agents {
		views = append(views, agentView{Agent: a, Actions: models.AgentActions(a.Status)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// Get handles GET /api/agents/{id}
func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid agent ID", http.StatusBadRequest)
		return
	}

	agent, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Agent not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agentView{Agent: agent, Actions: models.AgentActions(agent.Status)})
}

// Create handles POST /api/agents (manual registration by staff)
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var agent models.Agent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Create(r.Context(), &agent); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "create", "agent", &agent.ID, "Registered agent "+agent.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(&agent)
}

// Update handles PUT /api/agents/{id}
func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid agent ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	agent, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "update", "agent", &id, "Updated agent "+agent.Name)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agent)
}

// Approve handles POST /api/agents/{id}/approve
func (h *AgentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject handles POST /api/agents/{id}/reject
func (h *AgentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *AgentHandler) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid agent ID", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.AgentDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var result *models.AgentDecisionResponse
	if approve {
		result, err = h.service.Approve(r.Context(), id, userID, req.Note)
	} else {
		result, err = h.service.Reject(r.Context(), id, userID, req.Note)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotPending) {
			http.Error(w, "Agent has already been reviewed", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action := "reject"
	if approve {
		action = "approve"
	}
	h.audit.Record(r, action, "agent", &id, req.Note)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Delete handles DELETE /api/agents/{id}
func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid agent ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.audit.Record(r, "delete", "agent", &id, "")

	w.WriteHeader(http.StatusNoContent)
}
