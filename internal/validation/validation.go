package validation

import (
	"strings"

	"placerank/internal/models"
)

const (
	maxFieldLength    = 100
	maxSpecialtyCount = 10
	maxDailyVisitors  = 1000000
)

// ValidateAnalysisRequest checks an analysis request and normalizes it in
// place (trimmed fields, comma-split specialties). Returns an empty string
// when the request is valid, otherwise a client-facing message.
func ValidateAnalysisRequest(req *models.AnalysisRequest) string {
	req.BusinessType = strings.TrimSpace(req.BusinessType)
	req.Location = strings.Join(strings.Fields(req.Location), " ")
	req.Specialty = NormalizeSpecialty(req.Specialty)

	switch {
	case req.BusinessType == "":
		return "business_type is required"
	case len(req.BusinessType) > maxFieldLength:
		return "business_type is too long"
	case req.Location == "":
		return "location is required"
	case len(req.Location) > maxFieldLength:
		return "location is too long"
	case len(req.Specialty) == 0:
		return "at least one specialty is required"
	case len(req.Specialty) > maxSpecialtyCount:
		return "too many specialty entries"
	case req.CurrentDailyVisitors < 0:
		return "current_daily_visitors must not be negative"
	case req.TargetDailyVisitors < 0:
		return "target_daily_visitors must not be negative"
	case req.TargetDailyVisitors > maxDailyVisitors:
		return "target_daily_visitors is unrealistically large"
	case req.TargetDailyVisitors < req.CurrentDailyVisitors:
		return "target_daily_visitors must be at least current_daily_visitors"
	}

	for _, s := range req.Specialty {
		if len(s) > maxFieldLength {
			return "specialty entry is too long"
		}
	}
	return ""
}

// NormalizeSpecialty trims entries, splits any comma-joined values and drops
// empties, preserving order.
func NormalizeSpecialty(specialty []string) []string {
	out := make([]string, 0, len(specialty))
	for _, entry := range specialty {
		for _, part := range strings.Split(entry, ",") {
			part = strings.Join(strings.Fields(part), " ")
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ValidGuideSection reports whether a guide section name looks sane before
// map lookup (lowercase ascii and underscores only).
func ValidGuideSection(section string) bool {
	if section == "" || len(section) > 50 {
		return false
	}
	for _, r := range section {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}
