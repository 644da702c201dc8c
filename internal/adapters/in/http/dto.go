package http

import "time"

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type shiftResponse struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	StartTime time.Time `json:"start_time"`
}

// shiftSummaryResponse is the accounting breakdown of a shift. The derived
// fields are null until the closing pipeline has run; durations are reported
// in whole seconds.
type shiftSummaryResponse struct {
	ID        string     `json:"id"`
	WorkerID  string     `json:"worker_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	NumEndedOrders       *int   `json:"num_ended_orders"`
	TimeTotalSeconds     *int64 `json:"time_total_seconds"`
	GoodTimeSeconds      *int64 `json:"good_time_seconds"`
	BadTimeSeconds       *int64 `json:"bad_time_seconds"`
	LostTimeSeconds      *int64 `json:"lost_time_seconds"`
	TotalBugsTimeSeconds *int64 `json:"total_bugs_time_seconds"`
}

type startOrderRequest struct {
	MachineID string `json:"machine_id"`
}

type orderResponse struct {
	ID string `json:"id"`
}

type advanceOrderRequest struct {
	Action   string `json:"action"`
	PartName string `json:"part_name"`
	NumParts int    `json:"num_parts"`
}

type holdOrderRequest struct {
	ResumeURL string `json:"resume_url"`
}

type resumeResponse struct {
	URL string `json:"url"`
}

type fileReportRequest struct {
	OrderID     string `json:"order_id"`
	Description string `json:"description"`
	ResumeURL   string `json:"resume_url"`
}

type reportResponse struct {
	ID string `json:"id"`
}

type openReportResponse struct {
	ID          string    `json:"id"`
	OrderID     *string   `json:"order_id"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	StartTime   time.Time `json:"start_time"`
}

func asSeconds(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}

	seconds := int64(d.Seconds())
	return &seconds
}
