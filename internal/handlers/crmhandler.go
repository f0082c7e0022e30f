package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/services"
)

type VendorHandler struct {
	VendorService *services.VendorService
}

func NewVendorHandler(v *services.VendorService) *VendorHandler {
	return &VendorHandler{VendorService: v}
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req dtos.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.VendorService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newVendorView(*v))
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	var f dtos.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	vendors, err := h.VendorService.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapViews(vendors, newVendorView))
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	v, err := h.VendorService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVendorView(*v))
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	var req dtos.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.VendorService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVendorView(*v))
}

func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	if err := h.VendorService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ResourceHandler struct {
	ResourceService *services.ResourceService
}

func NewResourceHandler(r *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{ResourceService: r}
}

func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req dtos.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.ResourceService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newResourceView(*r))
}

// ListResources filters on availability through the status query parameter.
func (h *ResourceHandler) ListResources(c *gin.Context) {
	var f dtos.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	resources, err := h.ResourceService.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapViews(resources, newResourceView))
}

func (h *ResourceHandler) GetResource(c *gin.Context) {
	r, err := h.ResourceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newResourceView(*r))
}

func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	var req dtos.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.ResourceService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newResourceView(*r))
}

func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	if err := h.ResourceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ProcessFlowHandler struct {
	FlowService *services.ProcessFlowService
}

func NewProcessFlowHandler(p *services.ProcessFlowService) *ProcessFlowHandler {
	return &ProcessFlowHandler{FlowService: p}
}

func (h *ProcessFlowHandler) CreateProcessFlow(c *gin.Context) {
	var req dtos.ProcessFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	flow, err := h.FlowService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newProcessFlowView(*flow))
}

func (h *ProcessFlowHandler) ListProcessFlows(c *gin.Context) {
	var f dtos.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	flows, err := h.FlowService.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapViews(flows, newProcessFlowView))
}

func (h *ProcessFlowHandler) GetProcessFlow(c *gin.Context) {
	flow, err := h.FlowService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProcessFlowView(*flow))
}

// UpdateProcessFlow records a stage history entry when current_stage
// changes.
func (h *ProcessFlowHandler) UpdateProcessFlow(c *gin.Context) {
	var req dtos.ProcessFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	flow, err := h.FlowService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProcessFlowView(*flow))
}

func (h *ProcessFlowHandler) DeleteProcessFlow(c *gin.Context) {
	if err := h.FlowService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type CategoryHandler struct {
	CategoryService *services.CategoryService
}

func NewCategoryHandler(s *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{CategoryService: s}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
