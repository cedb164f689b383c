package model

// SuggestedCategories lists the category suggestions offered for each
// transaction type. Categories remain free-form; these are hints, not
// an enumeration.
var SuggestedCategories = map[TransactionType][]string{
	TypeIncome:      {"Salary", "Freelance", "Investment", "Gift", "Other"},
	TypeExpense:     {"Food", "Transport", "Rent", "Shopping", "Entertainment", "Health", "Bills", "Other"},
	TypeDebtPayment: {"Monthly Installment", "Extra Payment", "Closing Balance"},
}

// AccountColors are the color tags offered when creating an account.
var AccountColors = []string{"emerald", "blue", "indigo", "amber", "rose", "violet"}
