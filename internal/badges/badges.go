// Package badges maps record statuses to the colour classes the front end
// renders them with.
package badges

const (
	Green  = "bg-green-100 text-green-800"
	Gray   = "bg-gray-100 text-gray-800"
	Red    = "bg-red-100 text-red-800"
	Yellow = "bg-yellow-100 text-yellow-800"
	Orange = "bg-orange-100 text-orange-800"
	Blue   = "bg-blue-100 text-blue-800"
	Purple = "bg-purple-100 text-purple-800"
)

var (
	jobStatus = map[string]string{
		"Active":   Green,
		"Closed":   Gray,
		"Inactive": Red,
		"OnHold":   Yellow,
	}

	priority = map[string]string{
		"Urgent": Red,
		"High":   Orange,
		"Medium": Blue,
		"Low":    Gray,
	}

	flowStatus = map[string]string{
		"Active":    Green,
		"Completed": Blue,
		"OnHold":    Yellow,
		"Cancelled": Red,
	}

	vendorStatus = map[string]string{
		"active":   Green,
		"inactive": Red,
		"pending":  Yellow,
	}

	availability = map[string]string{
		"Available":  Green,
		"Busy":       Yellow,
		"On Project": Red,
	}

	// keyed by "type-source"
	resourceType = map[string]string{
		"In-house":          Blue,
		"In-house-Friend":   Green,
		"External-LinkedIn": Blue,
		"External-Email":    Orange,
		"External-Referral": Purple,
	}
)

func lookup(m map[string]string, key string) string {
	if c, ok := m[key]; ok {
		return c
	}
	return Gray
}

func JobStatus(s string) string { return lookup(jobStatus, s) }

func Priority(s string) string { return lookup(priority, s) }

func FlowStatus(s string) string { return lookup(flowStatus, s) }

func VendorStatus(s string) string { return lookup(vendorStatus, s) }

func Availability(s string) string { return lookup(availability, s) }

// ResourceType colours a resource by its type and, when the specific pair is
// known, its source.
func ResourceType(typ, source string) string {
	if c, ok := resourceType[typ+"-"+source]; ok {
		return c
	}
	return lookup(resourceType, typ)
}
