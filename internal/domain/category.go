package domain

import "strings"

// CategoryType classifies a category (and, via the classification table, a
// transaction type) as money in, money out, or an internal move.
type CategoryType string

const (
	CategoryIncome   CategoryType = "INCOME"
	CategoryExpense  CategoryType = "EXPENSE"
	CategoryTransfer CategoryType = "TRANSFER"
)

// Category tags transactions for reporting. The table is static: one row per
// transaction type, seeded once, never user-edited.
type Category struct {
	ID          string
	Name        string
	Type        CategoryType
	Description string
}

// categoryDescriptions holds the fixed description per transaction type.
var categoryDescriptions = map[TransactionType]string{
	TypeSale:                "Income from products or services sold",
	TypePurchase:            "Purchases of inventory or goods for resale",
	TypeExpense:             "General operational expenses",
	TypeRefund:              "Money returned to you from customers or vendors",
	TypeTransfer:            "Money moved between accounts",
	TypeLoanDisbursement:    "Funds received from a loan provider",
	TypeLoanRepayment:       "Payments made to repay a loan",
	TypeSubscriptionPayment: "Recurring payments to SaaS or service providers",
	TypeInvestmentInflow:    "Capital received from investors",
	TypeInvestmentOutflow:   "Funds invested into other businesses or ventures",
	TypeTaxPayment:          "Taxes paid to government authorities",
	TypeSalaryPayment:       "Salaries or wages paid to employees",
	TypeCommission:          "Commissions earned or paid",
	TypeDonation:            "Charitable donations or funds received",
	TypeGrantReceipt:        "Grants from NGOs or government",
	TypeUtilityPayment:      "Bills for water, electricity, internet etc.",
	TypeMaintenanceExpense:  "Costs for maintaining equipment or premises",
	TypeInsurancePayment:    "Insurance-related expenses",
	TypeReimbursement:       "Reimbursement of business-related costs",
	TypePenaltyOrFine:       "Fines paid due to legal or regulatory reasons",
	TypeDepreciation:        "Non-cash expense for asset depreciation",
}

// SeedCategories returns the full fixed category table, one entry per
// transaction type, with IDs left empty for the caller to assign.
func SeedCategories() []Category {
	categories := make([]Category, 0, len(categoryDescriptions))

	for _, t := range TransactionTypes() {
		class, _ := t.Classify()
		categories = append(categories, Category{
			Name:        CategoryNameForType(t),
			Type:        class,
			Description: categoryDescriptions[t],
		})
	}

	return categories
}

// CategoryNameForType turns an enum key into its display name,
// e.g. LOAN_REPAYMENT -> "Loan Repayment".
func CategoryNameForType(t TransactionType) string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
