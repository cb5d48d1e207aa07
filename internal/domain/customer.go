package domain

type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}
