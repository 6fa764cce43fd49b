package models

// CreditPackage represents a purchasable credit bundle
type CreditPackage struct {
	Credits int    `json:"credits"`
	Amount  int64  `json:"amount"`
	Title   string `json:"title"`
}

// BalanceResponse is the response shape for the balance endpoint
type BalanceResponse struct {
	Success bool `json:"success"`
	Credits int  `json:"credits"`
}

// PackagesResponse is the response shape for the package catalog endpoint
type PackagesResponse struct {
	Success  bool                     `json:"success"`
	Packages map[string]CreditPackage `json:"packages"`
}
