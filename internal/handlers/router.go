package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/staffing-crm/internal/middleware"
)

type Router struct {
	Jobs       *JobRequirementHandler
	Vendors    *VendorHandler
	Resources  *ResourceHandler
	Flows      *ProcessFlowHandler
	Categories *CategoryHandler

	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
	Logger         *slog.Logger
}

func (rt *Router) Engine() *gin.Engine {
	r := gin.New()

	logger := rt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	config := cors.DefaultConfig()
	if len(rt.AllowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = rt.AllowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}

	r.Use(gin.Recovery(), middleware.RequestIDs(), middleware.Logger(logger), cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/categories", rt.Categories.ListCategories)

		api.GET("/job-requirements", rt.Jobs.ListJobRequirements)
		api.POST("/job-requirements", rt.Jobs.CreateJobRequirement)
		api.GET("/job-requirements/next-id", rt.Jobs.NextJobID)
		api.GET("/job-requirements/:id", rt.Jobs.GetJobRequirement)
		api.PUT("/job-requirements/:id", rt.Jobs.UpdateJobRequirement)
		api.DELETE("/job-requirements/:id", rt.Jobs.DeleteJobRequirement)

		api.GET("/vendors", rt.Vendors.ListVendors)
		api.POST("/vendors", rt.Vendors.CreateVendor)
		api.GET("/vendors/:id", rt.Vendors.GetVendor)
		api.PUT("/vendors/:id", rt.Vendors.UpdateVendor)
		api.DELETE("/vendors/:id", rt.Vendors.DeleteVendor)

		api.GET("/resources", rt.Resources.ListResources)
		api.POST("/resources", rt.Resources.CreateResource)
		api.GET("/resources/:id", rt.Resources.GetResource)
		api.PUT("/resources/:id", rt.Resources.UpdateResource)
		api.DELETE("/resources/:id", rt.Resources.DeleteResource)

		api.GET("/process-flows", rt.Flows.ListProcessFlows)
		api.POST("/process-flows", rt.Flows.CreateProcessFlow)
		api.GET("/process-flows/:id", rt.Flows.GetProcessFlow)
		api.PUT("/process-flows/:id", rt.Flows.UpdateProcessFlow)
		api.DELETE("/process-flows/:id", rt.Flows.DeleteProcessFlow)
	}

	return r
}
