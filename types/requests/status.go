package requests

type GetStatusRequest struct {
	TransactionHash string `uri:"transaction_hash" validate:"required,txhash"`
}

type WaitStatusRequest struct {
	TransactionHash string `uri:"transaction_hash" validate:"required,txhash"`
	Timeout         int    `query:"timeout" default:"300" validate:"min=1,max=600"`
}
