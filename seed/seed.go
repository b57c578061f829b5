package seed

import (
	"time"

	"go-demobank/models"
)

// Fixed reference point for the seed data so first-run state is
// reproducible across sessions and in tests.
var seedNow = time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return seedNow.AddDate(0, 0, offset)
}

// Defaults returns the demo dataset used whenever no persisted state
// exists or the persisted blob is unreadable.
func Defaults() *models.State {
	creditDue := day(12)

	return &models.State{
		Version: models.StateVersion,
		Profile: models.Profile{
			FullName:     "Alex Morgan",
			Email:        "alex.morgan@example.com",
			Phone:        "(415) 555-0132",
			Address:      "2200 Market St, San Francisco, CA 94114",
			MemberSince:  time.Date(2019, time.March, 4, 0, 0, 0, 0, time.UTC),
			RewardPoints: 48210,
		},
		Accounts: []models.Account{
			{
				ID:            "acc-checking-5201",
				Name:          "SAPPHIRE CHECKING",
				AccountNumber: "000000125201",
				Type:          models.AccountChecking,
				Balance:       204599.36,
				Currency:      "USD",
				Status:        "active",
			},
			{
				ID:            "acc-savings-7744",
				Name:          "PREMIER SAVINGS",
				AccountNumber: "000000367744",
				Type:          models.AccountSavings,
				Balance:       86200.12,
				Currency:      "USD",
				Status:        "active",
			},
			{
				ID:            "acc-credit-9013",
				Name:          "FREEDOM UNLIMITED",
				AccountNumber: "000000889013",
				Type:          models.AccountCredit,
				Balance:       1862.45,
				Currency:      "USD",
				Status:        "active",
				CreditLimit:   15000,
				MinPayment:    40,
				PaymentDue:    &creditDue,
				APR:           24.24,
			},
		},
		// Deliberately not in date order: readers must re-sort.
		Transactions: []models.Transaction{
			{
				ID:        "txn-seed-001",
				AccountID: "acc-checking-5201",
				Type:      models.Debit,
				Category:  models.CategoryGroceries,
				Amount:    82.45,
				Merchant:  "Whole Foods Market",
				Status:    models.StatusCompleted,
				Date:      day(-2),
			},
			{
				ID:        "txn-seed-002",
				AccountID: "acc-checking-5201",
				Type:      models.Credit,
				Category:  models.CategoryIncome,
				Amount:    6400.00,
				Merchant:  "NORTHWIND LLC PAYROLL",
				Status:    models.StatusCompleted,
				Date:      day(-5),
			},
			{
				ID:        "txn-seed-003",
				AccountID: "acc-checking-5201",
				Type:      models.Debit,
				Category:  models.CategoryDining,
				Amount:    64.20,
				Merchant:  "Tartine Bakery",
				Status:    models.StatusCompleted,
				Date:      day(-1),
			},
			{
				ID:        "txn-seed-004",
				AccountID: "acc-credit-9013",
				Type:      models.Debit,
				Category:  models.CategoryShopping,
				Amount:    249.99,
				Merchant:  "Amazon.com",
				Status:    models.StatusPending,
				Date:      day(-1),
			},
			{
				ID:        "txn-seed-005",
				AccountID: "acc-credit-9013",
				Type:      models.Debit,
				Category:  models.CategoryTravel,
				Amount:    412.30,
				Merchant:  "United Airlines",
				Status:    models.StatusCompleted,
				Date:      day(-9),
			},
			{
				ID:        "txn-seed-006",
				AccountID: "acc-checking-5201",
				Type:      models.Debit,
				Category:  models.CategoryTransport,
				Amount:    28.75,
				Merchant:  "Uber",
				Status:    models.StatusCompleted,
				Date:      day(-3),
			},
			{
				ID:        "txn-seed-007",
				AccountID: "acc-savings-7744",
				Type:      models.Credit,
				Category:  models.CategoryTransfer,
				Amount:    1500.00,
				Merchant:  "Transfer from SAPPHIRE CHECKING",
				Status:    models.StatusCompleted,
				Date:      day(-7),
			},
			{
				ID:        "txn-seed-008",
				AccountID: "acc-checking-5201",
				Type:      models.Debit,
				Category:  models.CategoryDining,
				Amount:    118.60,
				Merchant:  "House of Prime Rib",
				Status:    models.StatusCompleted,
				Date:      day(-12),
			},
		},
		Cards: []models.Card{
			{
				ID:        "card-debit-4821",
				AccountID: "acc-checking-5201",
				LastFour:  "4821",
				Network:   "Visa",
				Expiry:    "09/28",
				Status:    "active",
				Locked:    false,
			},
			{
				ID:        "card-credit-7730",
				AccountID: "acc-credit-9013",
				LastFour:  "7730",
				Network:   "Visa",
				Expiry:    "02/27",
				Status:    "active",
				Locked:    false,
			},
		},
		Beneficiaries: []models.Beneficiary{
			{
				ID:            "ben-001",
				Name:          "Jordan Lee",
				AccountNumber: "5500 2214 9087",
				BankName:      "Wells Fargo",
			},
			{
				ID:            "ben-002",
				Name:          "Casey Rivera",
				AccountNumber: "8841 0033 1276",
				BankName:      "Bank of America",
			},
		},
		Bills: []models.Bill{
			{
				ID:              "bill-001",
				Payee:           "PG&E Electric",
				Category:        models.CategoryBills,
				Amount:          189.00,
				DueDate:         day(5),
				Autopay:         false,
				IsPaid:          false,
				SourceAccountID: "acc-checking-5201",
			},
			{
				ID:              "bill-002",
				Payee:           "Comcast Internet",
				Category:        models.CategoryBills,
				Amount:          89.99,
				DueDate:         day(-1),
				Autopay:         true,
				IsPaid:          false,
				SourceAccountID: "acc-checking-5201",
			},
			{
				ID:              "bill-003",
				Payee:           "State Farm Insurance",
				Category:        models.CategoryBills,
				Amount:          142.50,
				DueDate:         day(-14),
				Autopay:         false,
				IsPaid:          true,
				SourceAccountID: "acc-checking-5201",
			},
		},
		Notifications: []models.Notification{
			{
				ID:      "notif-001",
				Title:   "New sign-in detected",
				Message: "We noticed a sign-in from a new device in San Francisco, CA.",
				Type:    models.NotifySecurity,
				Read:    false,
				Date:    day(-1),
			},
			{
				ID:      "notif-002",
				Title:   "Payment scheduled",
				Message: "Your Comcast Internet autopay of $89.99 is scheduled.",
				Type:    models.NotifyPayment,
				Read:    false,
				Date:    day(-2),
			},
			{
				ID:      "notif-003",
				Title:   "Statement ready",
				Message: "Your June statement for FREEDOM UNLIMITED is ready to view.",
				Type:    models.NotifyAccount,
				Read:    false,
				Date:    day(-3),
			},
			{
				ID:      "notif-004",
				Title:   "Rewards bonus",
				Message: "You earned 1,200 bonus points on travel purchases.",
				Type:    models.NotifyOffer,
				Read:    true,
				Date:    day(-6),
			},
			{
				ID:      "notif-005",
				Title:   "Deposit posted",
				Message: "A direct deposit of $6,400.00 posted to SAPPHIRE CHECKING.",
				Type:    models.NotifyAccount,
				Read:    true,
				Date:    day(-5),
			},
			{
				ID:      "notif-006",
				Title:   "Card offer",
				Message: "You are pre-approved for a credit limit increase.",
				Type:    models.NotifyOffer,
				Read:    true,
				Date:    day(-10),
			},
		},
	}
}
