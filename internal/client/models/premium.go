package models

// AgentPackage is a premium verification tier a user can buy to become a
// verified agent.
type AgentPackage struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	ValidityDays string `json:"validity_days"`
	Description  string `json:"description"`
	Price        string `json:"price"`
}

// AgentPurchase is a premium package the user owns. Status is ACTIVE or
// EXPIRED.
type AgentPurchase struct {
	ID            int64        `json:"id"`
	Package       AgentPackage `json:"package"`
	PurchaseDate  string       `json:"purchase_date"`
	ExpiryDate    string       `json:"expiry_date"`
	Status        string       `json:"status"`
	DaysRemaining int          `json:"days_remaining"`
}

// AgentPurchaseResult acknowledges a premium package purchase.
type AgentPurchaseResult struct {
	Message    string `json:"message"`
	PurchaseID int64  `json:"purchase_id"`
}

// CashbackBonus is a one-off bonus the user can claim against its claim
// cost.
type CashbackBonus struct {
	ID        int64  `json:"id"`
	Amount    string `json:"amount"`
	ClaimCost string `json:"claim_cost"`
	Claimed   bool   `json:"claimed"`
	ClaimedAt string `json:"claimed_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

// WeeklyBonus is a recurring bonus accrued per week.
type WeeklyBonus struct {
	ID        int64  `json:"id"`
	Amount    string `json:"amount"`
	ClaimCost string `json:"claim_cost"`
	Claimed   bool   `json:"claimed"`
	ClaimedAt string `json:"claimed_at,omitempty"`
	CreatedAt string `json:"created_at"`
	WeekStart string `json:"week_start"`
}

// ClaimResult acknowledges a bonus claim.
type ClaimResult struct {
	Message string `json:"message"`
}
