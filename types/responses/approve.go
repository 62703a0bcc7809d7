package responses

type ApproveResponseData struct {
	TransactionHash string `json:"transactionHash"`
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	Message         string `json:"message"`
}
