package domain

// Fixed budget split percentages. They sum to 100%.
const (
	BudgetShareTravel  = 0.10
	BudgetShareMedical = 0.20
	BudgetShareLending = 0.50
	BudgetShareReserve = 0.20
)

type Budgets struct {
	Travel  float64 `json:"travel"`
	Medical float64 `json:"medical"`
	Lending float64 `json:"lending"`
	Reserve float64 `json:"reserve"`
}

// FundSummary is the dashboard projection derived from the full
// transaction and loan sets.
type FundSummary struct {
	TotalFund        float64 `json:"total_fund"`
	OutstandingLoans float64 `json:"outstanding_loans"`
	TotalAmount      float64 `json:"total_amount"`
	Budgets          Budgets `json:"budgets"`
}

// LendingBudget is the cap on new loan issuance: 50% of the total
// (liquid fund plus deployed outstanding balance).
func (s FundSummary) LendingBudget() float64 {
	return s.Budgets.Lending
}
