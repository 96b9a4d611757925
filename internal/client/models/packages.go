package models

// Package is an advertising package the user can purchase to earn per view.
type Package struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image,omitempty"`
	ValidityDays int     `json:"validity_days"`
	RatePerView  float64 `json:"rate_per_view"`
	Description  string  `json:"description"`
	Price        string  `json:"price"`
}

// Purchase is a package the user owns, with remaining validity.
type Purchase struct {
	ID            int64   `json:"id"`
	Package       Package `json:"package"`
	PurchaseDate  string  `json:"purchase_date"`
	ExpiryDate    string  `json:"expiry_date"`
	DaysRemaining int     `json:"days_remaining"`
}

// PackagesResponse is the catalogue plus the user's current package, if any.
type PackagesResponse struct {
	Packages    []Package `json:"packages"`
	UserPackage *Purchase `json:"user_package"`
}

// PurchasePackageRequest buys a package by id.
type PurchasePackageRequest struct {
	PackageID int64 `json:"package_id"`
}

// PurchasePackageResult acknowledges a package purchase.
type PurchasePackageResult struct {
	Message  string    `json:"message"`
	Purchase *Purchase `json:"purchase,omitempty"`
}
