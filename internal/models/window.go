package models

// AcquisitionWindow is one fixed-duration tagging interval of a run.
type AcquisitionWindow struct {
	Index  int   `json:"index"`
	Length int64 `json:"length"`
}

// Offset returns the start of the window relative to the start of window 0.
// The product is taken in int64 so large indexes cannot overflow a narrower type.
func (w AcquisitionWindow) Offset() int64 {
	return int64(w.Index) * w.Length
}

// WindowPlan describes how many windows the acquisition collaborator is told to iterate.
//
// Example JSON:
//
//	{
//	  "totalDuration": 8000000000,
//	  "windowLength": 1000000000,
//	  "windowCount": 8,
//	  "maxTagsPerWindow": 64,
//	  "eventCapacity": 512
//	}
type WindowPlan struct {
	TotalDuration    int64 `json:"totalDuration"`
	WindowLength     int64 `json:"windowLength"`
	WindowCount      int   `json:"windowCount"`
	MaxTagsPerWindow int   `json:"maxTagsPerWindow"`
	EventCapacity    int64 `json:"eventCapacity"`
}

// Windows materializes the planned windows in index order.
func (p *WindowPlan) Windows() []AcquisitionWindow {
	windows := make([]AcquisitionWindow, p.WindowCount)
	for i := range windows {
		windows[i] = AcquisitionWindow{Index: i, Length: p.WindowLength}
	}
	return windows
}

// CoveredDuration is the time spanned by all planned windows; it is >= TotalDuration.
func (p *WindowPlan) CoveredDuration() int64 {
	return int64(p.WindowCount) * p.WindowLength
}
