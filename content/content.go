// Package content carries the static FAQ and insight-article sets the
// marketing pages render, plus the shared search predicate over them.
package content

import "strings"

// Item is one searchable piece of static content: an FAQ entry (Title =
// question, Body = answer) or an insight article (Title + Body excerpt).
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// CategoryAll is the category filter value that matches every item.
const CategoryAll = "All"

// Search returns the items whose title or body contains the query
// case-insensitively AND whose category matches exactly. An empty query
// matches everything; CategoryAll disables the category predicate.
func Search(items []Item, query, category string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	results := make([]Item, 0, len(items))
	for _, item := range items {
		if category != CategoryAll && category != "" && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Body), query) {
			continue
		}
		results = append(results, item)
	}
	return results
}

// FAQs is the static FAQ set.
var FAQs = []Item{
	{
		ID:       "faq-001",
		Title:    "How do I view my portfolio performance?",
		Body:     "Your portfolio dashboard shows holdings, allocation and year-to-date returns under the Insights tab.",
		Category: "Investing",
	},
	{
		ID:       "faq-002",
		Title:    "What fees apply to managed portfolios?",
		Body:     "Managed portfolio accounts carry an annual advisory fee of 0.35%, billed quarterly.",
		Category: "Fees",
	},
	{
		ID:       "faq-003",
		Title:    "How do I lock a lost or stolen card?",
		Body:     "Open the card from the Cards page and toggle the lock switch. Locking is instant and reversible.",
		Category: "Cards",
	},
	{
		ID:       "faq-004",
		Title:    "When do mobile check deposits post?",
		Body:     "Deposits submitted before 8pm ET post the same business day; later deposits post the next business day.",
		Category: "Deposits",
	},
	{
		ID:       "faq-005",
		Title:    "How do I set up autopay for a bill?",
		Body:     "Edit the bill from the Pay Bills page and enable autopay with a source account. Due bills are paid automatically.",
		Category: "Payments",
	},
	{
		ID:       "faq-006",
		Title:    "Is my money insured?",
		Body:     "Deposit accounts are FDIC insured up to applicable limits. Investment products are not FDIC insured.",
		Category: "Security",
	},
}

// Insights is the static insight-article set.
var Insights = []Item{
	{
		ID:       "insight-001",
		Title:    "Rebalancing your portfolio in a volatile market",
		Body:     "A disciplined rebalancing schedule keeps portfolio drift in check without chasing the market.",
		Category: "Markets",
	},
	{
		ID:       "insight-002",
		Title:    "Five habits of consistent savers",
		Body:     "Automating transfers on payday is the single strongest predictor of savings growth.",
		Category: "Personal Finance",
	},
	{
		ID:       "insight-003",
		Title:    "Understanding credit utilization",
		Body:     "Keeping utilization under 30% of your credit limit supports a healthy score.",
		Category: "Credit",
	},
	{
		ID:       "insight-004",
		Title:    "Quarterly outlook: rates and fixed income",
		Body:     "With rate cuts priced in, duration positioning matters more than headline yield.",
		Category: "Markets",
	},
}
