package store

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-demobank/models"
	"go-demobank/seed"
)

// Persister is the write-through target for every mutation. Save errors
// are observable but never fatal; Load failures surface only as "no data".
type Persister interface {
	Load() (*models.State, bool)
	Save(*models.State) error
}

// Store holds the in-memory aggregate state for the single demo user.
// The seed data is the only tenancy boundary: accessors do not check
// ownership, every entity belongs to the one session user.
type Store struct {
	state     *models.State
	persister Persister
	logger    *slog.Logger
	mutex     sync.RWMutex
}

// New builds a store from persisted state, falling back to the demo
// dataset when nothing usable is saved.
func New(persister Persister, logger *slog.Logger) *Store {
	state, ok := persister.Load()
	if !ok {
		state = seed.Defaults()
		logger.Info("no saved state found, seeded demo dataset")
	}
	return &Store{state: state, persister: persister, logger: logger}
}

// persist write-throughs the full state. Failures are logged and
// swallowed so a broken disk never takes down the session.
func (s *Store) persist() {
	if err := s.persister.Save(s.state); err != nil {
		s.logger.Warn("state not persisted, in-memory copy remains authoritative", "error", err)
	}
}

// ---------- read accessors ----------

// Profile returns the session user's profile.
func (s *Store) Profile() models.Profile {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.Profile
}

// Accounts returns all accounts in collection order.
func (s *Store) Accounts() []models.Account {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]models.Account(nil), s.state.Accounts...)
}

// AccountByID returns the first account with the given id.
func (s *Store) AccountByID(id string) (models.Account, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, account := range s.state.Accounts {
		if account.ID == id {
			return account, true
		}
	}
	return models.Account{}, false
}

// AccountByNumber returns the first account with the given routable
// account number.
func (s *Store) AccountByNumber(number string) (models.Account, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, account := range s.state.Accounts {
		if account.AccountNumber == number {
			return account, true
		}
	}
	return models.Account{}, false
}

// Transactions returns the full transaction collection, newest-first by
// insertion (the natural order callers may rely on).
func (s *Store) Transactions() []models.Transaction {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]models.Transaction(nil), s.state.Transactions...)
}

// TransactionsForAccount returns the account's transactions sorted by
// date descending. The sort is re-derived on every call so backdated or
// out-of-order insertions still come back newest-first.
func (s *Store) TransactionsForAccount(accountID string) []models.Transaction {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var txs []models.Transaction
	for _, tx := range s.state.Transactions {
		if tx.AccountID == accountID {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs
}

// Cards returns all cards in collection order.
func (s *Store) Cards() []models.Card {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]models.Card(nil), s.state.Cards...)
}

// CardsForAccount filters cards by account, preserving collection order.
func (s *Store) CardsForAccount(accountID string) []models.Card {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var cards []models.Card
	for _, card := range s.state.Cards {
		if card.AccountID == accountID {
			cards = append(cards, card)
		}
	}
	return cards
}

// Beneficiaries returns the transfer address book.
func (s *Store) Beneficiaries() []models.Beneficiary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]models.Beneficiary(nil), s.state.Beneficiaries...)
}

// Bills returns all bills in collection order.
func (s *Store) Bills() []models.Bill {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]models.Bill(nil), s.state.Bills...)
}

// BillByID returns the first bill with the given id.
func (s *Store) BillByID(id string) (models.Bill, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, bill := range s.state.Bills {
		if bill.ID == id {
			return bill, true
		}
	}
	return models.Bill{}, false
}

// Notifications returns all notifications in collection order.
func (s *Store) Notifications() []models.Notification {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]models.Notification(nil), s.state.Notifications...)
}

// UnreadNotificationCount is recomputed on every call, never cached.
func (s *Store) UnreadNotificationCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	count := 0
	for _, n := range s.state.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Snapshot returns a deep copy of the aggregate state for derived views.
func (s *Store) Snapshot() *models.State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.Clone()
}

// ---------- merge-by-id mutators ----------
//
// Partial updates use pointer fields: nil means "leave untouched". An
// unknown id is a silent no-op, matching the UI contract where callers
// get no feedback that nothing happened.

// ProfileUpdate is a partial profile change.
type ProfileUpdate struct {
	FullName     *string
	Email        *string
	Phone        *string
	Address      *string
	RewardPoints *int
}

// UpdateProfile merges the given fields into the profile. No field-level
// validation: any value overwrites the existing one.
func (s *Store) UpdateProfile(update ProfileUpdate) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	p := &s.state.Profile
	if update.FullName != nil {
		p.FullName = *update.FullName
	}
	if update.Email != nil {
		p.Email = *update.Email
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Address != nil {
		p.Address = *update.Address
	}
	if update.RewardPoints != nil {
		p.RewardPoints = *update.RewardPoints
	}
	s.persist()
}

// AccountUpdate is a partial account change.
type AccountUpdate struct {
	Name       *string
	Balance    *float64
	Status     *string
	MinPayment *float64
	PaymentDue *time.Time
}

// UpdateAccount merges fields into the matching account; no-op when the
// id is unknown.
func (s *Store) UpdateAccount(id string, update AccountUpdate) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.applyAccountUpdate(id, update)
	s.persist()
}

func (s *Store) applyAccountUpdate(id string, update AccountUpdate) bool {
	for i := range s.state.Accounts {
		if s.state.Accounts[i].ID != id {
			continue
		}
		account := &s.state.Accounts[i]
		if update.Name != nil {
			account.Name = *update.Name
		}
		if update.Balance != nil {
			account.Balance = *update.Balance
		}
		if update.Status != nil {
			account.Status = *update.Status
		}
		if update.MinPayment != nil {
			account.MinPayment = *update.MinPayment
		}
		if update.PaymentDue != nil {
			account.PaymentDue = update.PaymentDue
		}
		return true
	}
	return false
}

// AddTransaction assigns a fresh id and prepends the transaction: the
// collection itself is kept newest-first, not just its sorted views.
func (s *Store) AddTransaction(tx models.Transaction) models.Transaction {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	created := s.appendTransaction(tx)
	s.persist()
	return created
}

func (s *Store) appendTransaction(tx models.Transaction) models.Transaction {
	tx.ID = "txn-" + uuid.New().String()
	tx.Category = tx.Category.Normalize()
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	s.state.Transactions = append([]models.Transaction{tx}, s.state.Transactions...)
	return tx
}

// CardUpdate is a partial card change.
type CardUpdate struct {
	Status *string
	Locked *bool
}

// UpdateCard merges fields into the matching card; no-op on unknown id.
// The lock flag is pure state, nothing external is actually blocked.
func (s *Store) UpdateCard(id string, update CardUpdate) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i := range s.state.Cards {
		if s.state.Cards[i].ID != id {
			continue
		}
		if update.Status != nil {
			s.state.Cards[i].Status = *update.Status
		}
		if update.Locked != nil {
			s.state.Cards[i].Locked = *update.Locked
		}
		break
	}
	s.persist()
}

// BillUpdate is a partial bill change.
type BillUpdate struct {
	Amount          *float64
	DueDate         *time.Time
	Autopay         *bool
	IsPaid          *bool
	SourceAccountID *string
}

// UpdateBill merges fields into the matching bill; no-op on unknown id.
func (s *Store) UpdateBill(id string, update BillUpdate) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.applyBillUpdate(id, update)
	s.persist()
}

func (s *Store) applyBillUpdate(id string, update BillUpdate) bool {
	for i := range s.state.Bills {
		if s.state.Bills[i].ID != id {
			continue
		}
		bill := &s.state.Bills[i]
		if update.Amount != nil {
			bill.Amount = *update.Amount
		}
		if update.DueDate != nil {
			bill.DueDate = *update.DueDate
		}
		if update.Autopay != nil {
			bill.Autopay = *update.Autopay
		}
		if update.IsPaid != nil {
			bill.IsPaid = *update.IsPaid
		}
		if update.SourceAccountID != nil {
			bill.SourceAccountID = *update.SourceAccountID
		}
		return true
	}
	return false
}

// AddBill assigns a fresh id and appends the bill to the collection.
func (s *Store) AddBill(bill models.Bill) models.Bill {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	bill.ID = "bill-" + uuid.New().String()
	bill.Category = bill.Category.Normalize()
	s.state.Bills = append(s.state.Bills, bill)
	s.persist()
	return bill
}

// MarkNotificationRead flips the read flag; no-op on unknown id.
func (s *Store) MarkNotificationRead(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			break
		}
	}
	s.persist()
}

// DeleteNotification removes the notification entirely; no-op on
// unknown id.
func (s *Store) DeleteNotification(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications = append(s.state.Notifications[:i], s.state.Notifications[i+1:]...)
			break
		}
	}
	s.persist()
}

// ---------- compound operations ----------
//
// Each compound operation runs as a unit of work: state is snapshotted
// first and restored if any step fails, so a paid bill can never exist
// without its transaction or balance change. A single persist happens
// after the whole unit succeeds.

// PayBill marks the bill paid, debits the source account and records the
// matching completed transaction.
func (s *Store) PayBill(billID, accountID string) (models.Transaction, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot := s.state.Clone()

	var bill *models.Bill
	for i := range s.state.Bills {
		if s.state.Bills[i].ID == billID {
			bill = &s.state.Bills[i]
			break
		}
	}
	if bill == nil {
		return models.Transaction{}, fmt.Errorf("bill %s not found", billID)
	}
	if bill.IsPaid {
		return models.Transaction{}, fmt.Errorf("bill %s is already paid", billID)
	}

	amount := bill.Amount
	payee := bill.Payee
	bill.IsPaid = true

	if err := s.debitAccount(accountID, amount); err != nil {
		s.state = snapshot
		return models.Transaction{}, err
	}

	tx := s.appendTransaction(models.Transaction{
		AccountID: accountID,
		Type:      models.Debit,
		Category:  models.CategoryBills,
		Amount:    amount,
		Merchant:  payee,
		Status:    models.StatusCompleted,
	})

	s.persist()
	return tx, nil
}

// Transfer moves money between two of the user's accounts, recording a
// debit on the source and a credit on the destination.
func (s *Store) Transfer(fromID, toID string, amount float64, memo string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive")
	}
	if fromID == toID {
		return fmt.Errorf("cannot transfer to the same account")
	}

	snapshot := s.state.Clone()

	if err := s.debitAccount(fromID, amount); err != nil {
		s.state = snapshot
		return err
	}
	if err := s.creditAccount(toID, amount); err != nil {
		s.state = snapshot
		return err
	}

	if memo == "" {
		memo = "Account transfer"
	}
	s.appendTransaction(models.Transaction{
		AccountID: fromID,
		Type:      models.Debit,
		Category:  models.CategoryTransfer,
		Amount:    amount,
		Merchant:  memo,
		Status:    models.StatusCompleted,
	})
	s.appendTransaction(models.Transaction{
		AccountID: toID,
		Type:      models.Credit,
		Category:  models.CategoryTransfer,
		Amount:    amount,
		Merchant:  memo,
		Status:    models.StatusCompleted,
	})

	s.persist()
	return nil
}

// DepositCheck credits the account and records a completed credit
// transaction for the deposit.
func (s *Store) DepositCheck(accountID string, amount float64, memo string) (models.Transaction, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if amount <= 0 {
		return models.Transaction{}, fmt.Errorf("deposit amount must be positive")
	}

	snapshot := s.state.Clone()

	if err := s.creditAccount(accountID, amount); err != nil {
		s.state = snapshot
		return models.Transaction{}, err
	}

	if memo == "" {
		memo = "Mobile check deposit"
	}
	tx := s.appendTransaction(models.Transaction{
		AccountID: accountID,
		Type:      models.Credit,
		Category:  models.CategoryIncome,
		Amount:    amount,
		Merchant:  memo,
		Status:    models.StatusCompleted,
	})

	s.persist()
	return tx, nil
}

// debitAccount applies a debit: funds out of a deposit account, amount
// owed up on a credit account.
func (s *Store) debitAccount(id string, amount float64) error {
	for i := range s.state.Accounts {
		if s.state.Accounts[i].ID != id {
			continue
		}
		if s.state.Accounts[i].Type == models.AccountCredit {
			s.state.Accounts[i].Balance += amount
		} else {
			s.state.Accounts[i].Balance -= amount
		}
		return nil
	}
	return fmt.Errorf("account %s not found", id)
}

// creditAccount applies a credit: funds into a deposit account, amount
// owed down on a credit account.
func (s *Store) creditAccount(id string, amount float64) error {
	for i := range s.state.Accounts {
		if s.state.Accounts[i].ID != id {
			continue
		}
		if s.state.Accounts[i].Type == models.AccountCredit {
			s.state.Accounts[i].Balance -= amount
		} else {
			s.state.Accounts[i].Balance += amount
		}
		return nil
	}
	return fmt.Errorf("account %s not found", id)
}
