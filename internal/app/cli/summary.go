package cli

import "github.com/ymakhloufi/loancalc/internal/pkg/model"

// printSummary rounds to two decimals; nothing upstream rounds.
func printSummary(c *Console, loan model.LoanInput, out model.LoanOutput) {
	code := loan.Currency.String()
	c.Printf("After %s days (%s) you will pay %s %s in total interest\n",
		out.ElapsedDays, out.AccrualDate, out.TotalInterest.StringFixed(2), code)
	c.Printf("Daily interest with margin: %s %s\n", out.DailyInterestWithMargin.StringFixed(2), code)
	c.Printf("Daily interest without margin: %s %s\n", out.DailyInterestWithoutMargin.StringFixed(2), code)
}
