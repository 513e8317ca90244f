package models

// WalletInfo is the node wallet information served by the gateway.
type WalletInfo struct {
	// WalletAddress is the Ethereum address of the node's wallet.
	WalletAddress string `json:"walletAddress"`

	// BZZBalance is the BZZ token balance in wei, kept as a string to avoid
	// precision loss on large values. Omitted when the node did not report it.
	BZZBalance string `json:"bzzBalance,omitempty"`
}

// ChequebookInfo is the node chequebook information served by the gateway.
type ChequebookInfo struct {
	// ChequebookAddress is the address of the node's chequebook contract.
	ChequebookAddress string `json:"chequebookAddress"`

	// AvailableBalance is the spendable chequebook balance in wei as a
	// string. Omitted when the balance lookup failed or was not reported.
	AvailableBalance string `json:"availableBalance,omitempty"`

	// TotalBalance is the total chequebook balance in wei as a string.
	// Omitted when the balance lookup failed or was not reported.
	TotalBalance string `json:"totalBalance,omitempty"`
}
