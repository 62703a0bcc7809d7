package responses

import "github.com/autoswappr/autoswap-go/models"

type TransactionListData struct {
	Transactions []*models.TransactionRecord `json:"transactions"`
	Count        int                         `json:"count"`
}

type CleanupResponseData struct {
	Evicted int `json:"evicted"`
}
