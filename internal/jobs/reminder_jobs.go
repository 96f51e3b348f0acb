package jobs

import (
	"context"
	"fmt"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
)

// SendDueTomorrowReminders dispatches one reminder per PENDING bill that
// falls due tomorrow. A durable marker set guarantees at most one dispatch
// per bill over its lifetime, across repeated runs and process restarts.
func (jr *JobRunner) SendDueTomorrowReminders() {
	jr.runWithRecovery("SendDueTomorrowReminders", func() {
		jr.evaluateDueTomorrow(context.Background())
	})
}

func (jr *JobRunner) evaluateDueTomorrow(ctx context.Context) {
	if jr.channel == nil {
		// No delivery channel: do nothing, and in particular do not mark
		// bills as sent that were never dispatched.
		logger.Debug("No notification channel configured, skipping reminder evaluation")
		return
	}

	tomorrow := domain.DateOnly(jr.now()).AddDate(0, 0, 1)
	sent := jr.store.SentNotifications()

	dispatched := 0
	for _, bill := range jr.store.Bills() {
		if bill.Status != domain.BillStatusPending {
			continue
		}
		// Only the exact tomorrow-date boundary triggers a reminder. Bills
		// already overdue get no catch-up dispatch.
		if !bill.DueOn(tomorrow) {
			continue
		}
		if alreadySent(sent, bill.ID) {
			continue
		}

		title := "Due Date Reminder - ContasPro"
		body := fmt.Sprintf("The bill %q for %.2f is due tomorrow!", bill.Beneficiary, bill.Amount)

		if err := jr.channel.Deliver(ctx, title, body); err != nil {
			// Not delivered, so not marked; the next evaluation retries
			logger.Error("Failed to deliver reminder",
				"bill_id", bill.ID, "beneficiary", bill.Beneficiary, "error", err)
			continue
		}

		// Mark immediately after dispatch so a re-evaluation in the same
		// or a later cycle cannot re-dispatch for this bill
		if err := jr.store.MarkNotificationSent(bill.ID); err != nil {
			logger.Error("Failed to persist dispatch marker; reminder may repeat",
				"bill_id", bill.ID, "error", err)
		}

		dispatched++
		logger.Debug("Dispatched due-date reminder",
			"bill_id", bill.ID, "beneficiary", bill.Beneficiary, "due_date", bill.DueDate)
	}

	logger.Info("Due-date reminders evaluated",
		"due_tomorrow", tomorrow.Format(domain.DateLayout), "dispatched", dispatched)
}

func alreadySent(sent []string, billID string) bool {
	for _, id := range sent {
		if id == billID {
			return true
		}
	}
	return false
}
