package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-demobank/content"
	"go-demobank/models"
	"go-demobank/session"
	"go-demobank/store"
	"go-demobank/views"
)

// app bundles the handler dependencies.
type app struct {
	store    *store.Store
	sessions *session.Provider
	logger   *slog.Logger
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type TransferRequest struct {
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Amount        float64 `json:"amount"`
	Memo          string  `json:"memo"`
}

type DepositRequest struct {
	AccountID string  `json:"accountId"`
	Amount    float64 `json:"amount"`
	Memo      string  `json:"memo"`
}

type BillRequest struct {
	Payee           string    `json:"payee"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	DueDate         time.Time `json:"due_date"`
	Autopay         bool      `json:"autopay"`
	SourceAccountID string    `json:"source_account_id"`
}

type PayBillRequest struct {
	AccountID string `json:"accountId"`
}

// ---------- session ----------

func (a *app) signIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	token, err := a.sessions.SignIn(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":     token.Value,
		"userId":    token.UserID,
		"expiresAt": token.ExpiresAt.Format(time.RFC3339),
	})
}

func (a *app) signOut(c *gin.Context) {
	a.sessions.SignOut(c.GetHeader("Authorization"))
	c.Status(http.StatusNoContent)
}

// ---------- profile ----------

func (a *app) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.Profile())
}

func (a *app) updateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	a.store.UpdateProfile(store.ProfileUpdate{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	c.JSON(http.StatusOK, a.store.Profile())
}

// ---------- accounts ----------

func (a *app) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": a.store.Accounts()})
}

// getAccount resolves the path parameter first as an account id, then
// as an account number, since account numbers are routable in URLs.
func (a *app) getAccount(c *gin.Context) {
	key := c.Param("accountId")
	account, found := a.store.AccountByID(key)
	if !found {
		account, found = a.store.AccountByNumber(key)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (a *app) listAccountTransactions(c *gin.Context) {
	accountID := c.Param("accountId")
	if _, found := a.store.AccountByID(accountID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	txs := a.store.TransactionsForAccount(accountID)
	if c.Query("grouped") == "true" {
		c.JSON(http.StatusOK, gin.H{"accountId": accountID, "groups": views.GroupByDate(txs)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountId": accountID, "transactions": txs})
}

func (a *app) listAccountCards(c *gin.Context) {
	accountID := c.Param("accountId")
	if _, found := a.store.AccountByID(accountID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountId": accountID, "cards": a.store.CardsForAccount(accountID)})
}

// ---------- money movement ----------

func (a *app) createTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	var errs []string
	if req.FromAccountID == "" {
		errs = append(errs, "From account ID cannot be empty")
	}
	if req.ToAccountID == "" {
		errs = append(errs, "To account ID cannot be empty")
	}
	if req.Amount <= 0 {
		errs = append(errs, "Amount must be positive")
	}
	if req.FromAccountID == req.ToAccountID && req.FromAccountID != "" {
		errs = append(errs, "Cannot transfer to the same account")
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := a.store.Transfer(req.FromAccountID, req.ToAccountID, req.Amount, req.Memo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

func (a *app) depositCheck(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}
	if req.AccountID == "" || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Account ID and a positive amount are required"}})
		return
	}

	tx, err := a.store.DepositCheck(req.AccountID, req.Amount, req.Memo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "transaction": tx})
}

// ---------- cards ----------

func (a *app) listCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": a.store.Cards()})
}

func (a *app) setCardLock(c *gin.Context, locked bool) {
	cardID := c.Param("cardId")
	a.store.UpdateCard(cardID, store.CardUpdate{Locked: &locked})
	c.JSON(http.StatusOK, gin.H{"cardId": cardID, "locked": locked})
}

func (a *app) lockCard(c *gin.Context)   { a.setCardLock(c, true) }
func (a *app) unlockCard(c *gin.Context) { a.setCardLock(c, false) }

// ---------- beneficiaries ----------

func (a *app) listBeneficiaries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"beneficiaries": a.store.Beneficiaries()})
}

// ---------- bills ----------

func (a *app) listBills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bills": a.store.Bills()})
}

func (a *app) addBill(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	var errs []string
	if req.Payee == "" {
		errs = append(errs, "Payee cannot be empty")
	}
	if req.Amount <= 0 {
		errs = append(errs, "Amount must be positive")
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	bill := a.store.AddBill(models.Bill{
		Payee:           req.Payee,
		Category:        models.Category(req.Category),
		Amount:          req.Amount,
		DueDate:         req.DueDate,
		Autopay:         req.Autopay,
		SourceAccountID: req.SourceAccountID,
	})
	c.JSON(http.StatusCreated, bill)
}

func (a *app) payBill(c *gin.Context) {
	billID := c.Param("billId")

	// An absent or empty body is fine: the bill's own source account is used.
	var req PayBillRequest
	_ = c.ShouldBindJSON(&req)

	accountID := req.AccountID
	if accountID == "" {
		bill, found := a.store.BillByID(billID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		accountID = bill.SourceAccountID
	}
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No source account for bill payment"})
		return
	}

	tx, err := a.store.PayBill(billID, accountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "transaction": tx})
}

// ---------- notifications ----------

func (a *app) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": a.store.Notifications(),
		"unreadCount":   a.store.UnreadNotificationCount(),
	})
}

func (a *app) markNotificationRead(c *gin.Context) {
	id := c.Param("notificationId")
	a.store.MarkNotificationRead(id)
	c.JSON(http.StatusOK, gin.H{"unreadCount": a.store.UnreadNotificationCount()})
}

func (a *app) deleteNotification(c *gin.Context) {
	a.store.DeleteNotification(c.Param("notificationId"))
	c.Status(http.StatusNoContent)
}

// ---------- derived views ----------

// spendingInsights windows the user's debit transactions to the
// requested period and returns category spend plus top merchants.
func (a *app) spendingInsights(c *gin.Context) {
	period := views.Period(c.DefaultQuery("period", string(views.PeriodMonth)))
	cutoff := views.PeriodStart(period, time.Now())

	snapshot := a.store.Snapshot()
	windowed := views.FilterSince(snapshot.Transactions, cutoff)

	c.JSON(http.StatusOK, gin.H{
		"period":     period,
		"since":      cutoff.Format(time.RFC3339),
		"categories": views.CategorySpend(windowed),
		"merchants":  views.TopMerchants(windowed),
	})
}

func (a *app) searchFAQs(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", content.CategoryAll)
	c.JSON(http.StatusOK, gin.H{"faqs": content.Search(content.FAQs, query, category)})
}

func (a *app) searchInsights(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", content.CategoryAll)
	c.JSON(http.StatusOK, gin.H{"insights": content.Search(content.Insights, query, category)})
}
