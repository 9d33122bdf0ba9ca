package request

type RevenueReportRequest struct {
	Period string `json:"period" validate:"required,oneof=week month year"`
}

type ExportReportRequest struct {
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}
