package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type masterDataHandler struct {
	masterDataService portssvc.MasterDataSvcFacade
}

// registerMasterDataRoutes registers the project and contractor routes.
func registerMasterDataRoutes(rg *gin.RouterGroup, masterDataService portssvc.MasterDataSvcFacade) {
	h := &masterDataHandler{masterDataService: masterDataService}

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}

	contractors := rg.Group("/contractors")
	{
		contractors.POST("", h.createContractor)
		contractors.GET("", h.listContractors)
		contractors.GET("/:id", h.getContractor)
		contractors.PUT("/:id", h.updateContractor)
		contractors.DELETE("/:id", h.deleteContractor)
	}
}

// createProject godoc
// @Summary Register a project
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} domain.Project
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not manage master data"
// @Failure 409 {object} dto.ErrorResponse "Project already exists"
// @Security BearerAuth
// @Router /projects [post]
func (h *masterDataHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	project, err := h.masterDataService.CreateProject(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// listProjects godoc
// @Summary List projects
// @Tags master-data
// @Produce  json
// @Success 200 {array} domain.Project
// @Security BearerAuth
// @Router /projects [get]
func (h *masterDataHandler) listProjects(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	projects, err := h.masterDataService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// getProject godoc
// @Summary Get a project by ID
// @Tags master-data
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} domain.Project
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *masterDataHandler) getProject(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	project, err := h.masterDataService.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// updateProject godoc
// @Summary Update a project
// @Description Replaces every editable field of the project
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.UpdateProjectRequest true "Project details"
// @Success 200 {object} domain.Project
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not manage master data"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *masterDataHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	project, err := h.masterDataService.UpdateProject(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// deleteProject godoc
// @Summary Delete a project
// @Tags master-data
// @Param   id path string true "Project ID"
// @Param   X-Deletion-Secret header string true "Shared deletion secret"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Wrong deletion secret"
// @Failure 403 {object} dto.ErrorResponse "Role may not delete"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *masterDataHandler) deleteProject(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.masterDataService.DeleteProject(c.Request.Context(), c.Param("id"), c.GetHeader(deletionSecretHeader), userID); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

// createContractor godoc
// @Summary Register a contractor
// @Description The estimated amount is unitPrice x estimatedQty
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   contractor body dto.CreateContractorRequest true "Contractor details"
// @Success 201 {object} domain.Contractor
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not manage master data"
// @Failure 409 {object} dto.ErrorResponse "Contractor already exists"
// @Security BearerAuth
// @Router /contractors [post]
func (h *masterDataHandler) createContractor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContractor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	contractor, err := h.masterDataService.CreateContractor(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create contractor")
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

// listContractors godoc
// @Summary List contractors
// @Tags master-data
// @Produce  json
// @Success 200 {array} domain.Contractor
// @Security BearerAuth
// @Router /contractors [get]
func (h *masterDataHandler) listContractors(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	contractors, err := h.masterDataService.ListContractors(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list contractors")
		return
	}
	c.JSON(http.StatusOK, contractors)
}

// getContractor godoc
// @Summary Get a contractor by ID
// @Tags master-data
// @Produce  json
// @Param   id path string true "Contractor ID"
// @Success 200 {object} domain.Contractor
// @Failure 404 {object} dto.ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [get]
func (h *masterDataHandler) getContractor(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	contractor, err := h.masterDataService.GetContractorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve contractor")
		return
	}
	c.JSON(http.StatusOK, contractor)
}

// updateContractor godoc
// @Summary Update a contractor
// @Description Replaces every editable field; the estimated amount is recomputed
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Contractor ID"
// @Param   contractor body dto.UpdateContractorRequest true "Contractor details"
// @Success 200 {object} domain.Contractor
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not manage master data"
// @Failure 404 {object} dto.ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [put]
func (h *masterDataHandler) updateContractor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateContractor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	contractor, err := h.masterDataService.UpdateContractor(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update contractor")
		return
	}
	c.JSON(http.StatusOK, contractor)
}

// deleteContractor godoc
// @Summary Delete a contractor
// @Tags master-data
// @Param   id path string true "Contractor ID"
// @Param   X-Deletion-Secret header string true "Shared deletion secret"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Wrong deletion secret"
// @Failure 403 {object} dto.ErrorResponse "Role may not delete"
// @Failure 404 {object} dto.ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [delete]
func (h *masterDataHandler) deleteContractor(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.masterDataService.DeleteContractor(c.Request.Context(), c.Param("id"), c.GetHeader(deletionSecretHeader), userID); err != nil {
		respondError(c, err, "Failed to delete contractor")
		return
	}
	c.Status(http.StatusNoContent)
}
