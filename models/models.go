package models

import "time"

// AccountType classifies a bank account.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountCredit   AccountType = "credit"
)

// TransactionDirection is the sign of a transaction. A debit reduces
// available funds (or increases the amount owed on a credit account); a
// credit does the opposite. Amounts are always non-negative magnitudes.
type TransactionDirection string

const (
	Debit  TransactionDirection = "debit"
	Credit TransactionDirection = "credit"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
)

// Category buckets a transaction for spend aggregation. Unrecognized
// values collapse to CategoryOther so rendering switches stay exhaustive.
type Category string

const (
	CategoryDining    Category = "dining"
	CategoryGroceries Category = "groceries"
	CategoryShopping  Category = "shopping"
	CategoryTravel    Category = "travel"
	CategoryTransport Category = "transport"
	CategoryBills     Category = "bills"
	CategoryIncome    Category = "income"
	CategoryTransfer  Category = "transfer"
	CategoryOther     Category = "other"
)

// Normalize maps free-form category strings onto the closed set.
func (c Category) Normalize() Category {
	switch c {
	case CategoryDining, CategoryGroceries, CategoryShopping, CategoryTravel,
		CategoryTransport, CategoryBills, CategoryIncome, CategoryTransfer:
		return c
	}
	return CategoryOther
}

// NotificationType tags a notification for icon/color selection.
type NotificationType string

const (
	NotifySecurity NotificationType = "security"
	NotifyPayment  NotificationType = "payment"
	NotifyAccount  NotificationType = "account"
	NotifyOffer    NotificationType = "offer"
)

// Profile is the single demo user's identity and contact record.
type Profile struct {
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	MemberSince  time.Time `json:"member_since"`
	RewardPoints int       `json:"reward_points"`
}

// Account is a checking, savings or credit account. For credit accounts
// Balance is the amount owed and the credit-specific fields are set; for
// the other types they are zero.
type Account struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	AccountNumber string      `json:"account_number"`
	Type          AccountType `json:"type"`
	Balance       float64     `json:"balance"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	CreditLimit   float64     `json:"credit_limit,omitempty"`
	MinPayment    float64     `json:"min_payment,omitempty"`
	PaymentDue    *time.Time  `json:"payment_due,omitempty"`
	APR           float64     `json:"apr,omitempty"`
}

// Transaction is one money movement against an account.
type Transaction struct {
	ID        string               `json:"id"`
	AccountID string               `json:"account_id"`
	Type      TransactionDirection `json:"transaction_type"`
	Category  Category             `json:"category"`
	Amount    float64              `json:"amount"`
	Merchant  string               `json:"merchant"`
	Status    TransactionStatus    `json:"status"`
	Date      time.Time            `json:"transaction_date"`
}

// Card is a physical or virtual card tied to an account. Only the last
// four digits of the number are ever stored.
type Card struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	LastFour  string `json:"last_four"`
	Network   string `json:"network"`
	Expiry    string `json:"expiry"`
	Status    string `json:"status"`
	Locked    bool   `json:"locked"`
}

// Beneficiary is an address-book entry used to prefill transfers.
type Beneficiary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
}

// Bill is a payable with an optional autopay source account.
type Bill struct {
	ID              string    `json:"id"`
	Payee           string    `json:"payee"`
	Category        Category  `json:"category"`
	Amount          float64   `json:"amount"`
	DueDate         time.Time `json:"due_date"`
	Autopay         bool      `json:"autopay"`
	IsPaid          bool      `json:"is_paid"`
	SourceAccountID string    `json:"source_account_id,omitempty"`
}

// Notification is a user-facing message with a read flag.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
	Date    time.Time        `json:"date"`
}

// StateVersion is the schema version written into persisted blobs.
// Blobs with any other version are discarded in favor of seed defaults.
const StateVersion = 1

// State is the aggregate session state: all seven collections.
type State struct {
	Version       int            `json:"version"`
	Profile       Profile        `json:"profile"`
	Accounts      []Account      `json:"accounts"`
	Transactions  []Transaction  `json:"transactions"`
	Cards         []Card         `json:"cards"`
	Beneficiaries []Beneficiary  `json:"beneficiaries"`
	Bills         []Bill         `json:"bills"`
	Notifications []Notification `json:"notifications"`
}

// Clone returns a deep copy of the state. Compound store operations
// snapshot through this so a failed step can roll back cleanly.
func (s *State) Clone() *State {
	c := *s
	c.Accounts = append([]Account(nil), s.Accounts...)
	c.Transactions = append([]Transaction(nil), s.Transactions...)
	c.Cards = append([]Card(nil), s.Cards...)
	c.Beneficiaries = append([]Beneficiary(nil), s.Beneficiaries...)
	c.Bills = append([]Bill(nil), s.Bills...)
	c.Notifications = append([]Notification(nil), s.Notifications...)
	return &c
}
