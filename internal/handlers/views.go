package handlers

import (
	"github.com/justsurfingit/staffing-crm/internal/badges"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

type jobRequirementView struct {
	models.JobRequirement
	StatusColor   string `json:"status_color"`
	PriorityColor string `json:"priority_color"`
}

func newJobRequirementView(j models.JobRequirement) jobRequirementView {
	return jobRequirementView{
		JobRequirement: j,
		StatusColor:    badges.JobStatus(j.Status),
		PriorityColor:  badges.Priority(j.Priority),
	}
}

type vendorView struct {
	models.Vendor
	StatusColor string `json:"status_color"`
}

func newVendorView(v models.Vendor) vendorView {
	return vendorView{Vendor: v, StatusColor: badges.VendorStatus(v.Status)}
}

type resourceView struct {
	models.Resource
	AvailabilityColor string `json:"availability_color"`
	TypeColor         string `json:"type_color"`
}

func newResourceView(r models.Resource) resourceView {
	return resourceView{
		Resource:          r,
		AvailabilityColor: badges.Availability(r.Availability),
		TypeColor:         badges.ResourceType(r.Type, r.Source),
	}
}

type processFlowView struct {
	models.ProcessFlow
	StatusColor   string `json:"status_color"`
	PriorityColor string `json:"priority_color"`
}

func newProcessFlowView(p models.ProcessFlow) processFlowView {
	return processFlowView{
		ProcessFlow:   p,
		StatusColor:   badges.FlowStatus(p.Status),
		PriorityColor: badges.Priority(p.Priority),
	}
}

func mapViews[T, V any](in []T, view func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, view(v))
	}
	return out
}
