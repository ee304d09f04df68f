package contract

type ReportExportResponse struct {
	Kind   string `json:"kind"`
	Format string `json:"format"`
	Key    string `json:"key"`
	Rows   int    `json:"rows"`
}
