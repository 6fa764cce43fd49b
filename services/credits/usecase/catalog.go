package usecase

import (
	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

// Packages is the static credit package catalog served to the frontend.
// Amounts are in IDR at the platform's fixed price per credit.
var Packages = map[string]models.CreditPackage{
	"starter": {Credits: 20, Amount: 120000, Title: "Starter Pack"},
	"popular": {Credits: 40, Amount: 240000, Title: "Popular Pack"},
	"pro":     {Credits: 100, Amount: 600000, Title: "Pro Pack"},
	"max":     {Credits: 250, Amount: 1500000, Title: "Max Pack"},
}
