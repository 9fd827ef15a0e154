package dto

// PlatformOverviewResponse represents platform-wide totals for admins
type PlatformOverviewResponse struct {
	Organizations int64 `json:"organizations"`
	Users         int64 `json:"users"`
	Projects      int64 `json:"projects"`
	Invoices      int64 `json:"invoices"`
	Documents     int64 `json:"documents"`
}

// ReceivablesResponse represents invoice money totals across the platform
type ReceivablesResponse struct {
	TotalBilled      string `json:"totalBilled"`
	TotalPaid        string `json:"totalPaid"`
	TotalOutstanding string `json:"totalOutstanding"`
}

// OutboxStatsResponse represents outbox backlog by status
type OutboxStatsResponse struct {
	Pending int64            `json:"pending"`
	Sent    int64            `json:"sent"`
	ByKind  map[string]int64 `json:"byKind"`
}
