package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce/internal/repository"
)

// MasterHandler serves the flat reference-data endpoints.
type MasterHandler struct {
	master       repository.MasterRepositoryInterface
	companyUsers repository.CompanyUserRepositoryInterface
}

func NewMasterHandler(
	master repository.MasterRepositoryInterface,
	companyUsers repository.CompanyUserRepositoryInterface,
) *MasterHandler {
	return &MasterHandler{master: master, companyUsers: companyUsers}
}

func (h *MasterHandler) GetTrades(c *gin.Context) {
	trades, err := h.master.ListTrades(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, trades)
}

func (h *MasterHandler) GetMaterials(c *gin.Context) {
	materials, err := h.master.ListMaterials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, materials)
}

func (h *MasterHandler) GetTools(c *gin.Context) {
	tools, err := h.master.ListTools(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, tools)
}

func (h *MasterHandler) GetClients(c *gin.Context) {
	clients, err := h.master.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, clients)
}

// GetUsersByRole lists company users, filtered by the role query parameter.
func (h *MasterHandler) GetUsersByRole(c *gin.Context) {
	users, err := h.companyUsers.ListByRole(c.Request.Context(), c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, users)
}
