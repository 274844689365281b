package models

// BusinessInfo describes the business being analyzed.
type BusinessInfo struct {
	BusinessType string   `json:"business_type"`
	Location     string   `json:"location"`
	Specialty    []string `json:"specialty"`
}

// AnalysisRequest is the input to the analysis operation.
type AnalysisRequest struct {
	BusinessType         string   `json:"business_type"`
	Location             string   `json:"location"`
	Specialty            []string `json:"specialty"`
	CurrentDailyVisitors int      `json:"current_daily_visitors"`
	TargetDailyVisitors  int      `json:"target_daily_visitors"`
}

// Business returns the business-info portion of the request.
func (r *AnalysisRequest) Business() BusinessInfo {
	return BusinessInfo{
		BusinessType: r.BusinessType,
		Location:     r.Location,
		Specialty:    r.Specialty,
	}
}

// VisitorGap returns the difference between target and current daily visitors.
func (r *AnalysisRequest) VisitorGap() int {
	return r.TargetDailyVisitors - r.CurrentDailyVisitors
}
