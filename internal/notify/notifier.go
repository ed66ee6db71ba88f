package notify

import (
	"fmt"

	"auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// Notifier delivers user-facing messages (email, push). Every method is
// fire-and-forget: delivery failures are logged and swallowed, never
// propagated to the caller's state mutation.
type Notifier interface {
	NotifyAuctionWon(auctionID, userID string, winningBid, amountDue decimal.Decimal, paymentURL string)
	NotifyVendorSold(auctionID, vendorID string, winningBid decimal.Decimal)
	NotifyRegistrationConfirmed(auctionID, userID string)
	NotifyOrderCreated(order models.Order, vendorID string)
}

// MessageSender is the outbound transactional channel (email service, push
// gateway). Implementations may block; the notifier never waits on them.
type MessageSender interface {
	Send(recipient, subject, body string) error
}

// AsyncNotifier sends each notification on its own goroutine through a
// MessageSender and logs failures.
type AsyncNotifier struct {
	sender MessageSender
}

// NewAsyncNotifier creates a notifier over the given sender.
func NewAsyncNotifier(sender MessageSender) *AsyncNotifier {
	return &AsyncNotifier{sender: sender}
}

func (n *AsyncNotifier) deliver(recipient, subject, body string) {
	go func() {
		if err := n.sender.Send(recipient, subject, body); err != nil {
			utils.Error("notification delivery failed", map[string]any{
				"recipient": recipient, "subject": subject, "error": err.Error(),
			})
		}
	}()
}

// NotifyAuctionWon tells the winner how much is still due and where to pay
func (n *AsyncNotifier) NotifyAuctionWon(auctionID, userID string, winningBid, amountDue decimal.Decimal, paymentURL string) {
	n.deliver(userID, "You won the auction",
		fmt.Sprintf("Auction %s closed at %s. Your deposit leaves %s due. Pay at: %s",
			auctionID, winningBid.String(), amountDue.String(), paymentURL))
}

// NotifyVendorSold tells the vendor their auction sold
func (n *AsyncNotifier) NotifyVendorSold(auctionID, vendorID string, winningBid decimal.Decimal) {
	n.deliver(vendorID, "Your auction sold",
		fmt.Sprintf("Auction %s sold for %s.", auctionID, winningBid.String()))
}

// NotifyRegistrationConfirmed tells the bidder their deposit was received
func (n *AsyncNotifier) NotifyRegistrationConfirmed(auctionID, userID string) {
	n.deliver(userID, "Auction registration confirmed",
		fmt.Sprintf("Your entry fee for auction %s was received. You can now bid.", auctionID))
}

// NotifyOrderCreated tells buyer and vendor the settlement order exists
func (n *AsyncNotifier) NotifyOrderCreated(order models.Order, vendorID string) {
	n.deliver(order.UserID, "Order confirmed",
		fmt.Sprintf("Order %s for auction %s confirmed at %s.",
			order.OrderID, order.AuctionID, order.Amount.String()))
	n.deliver(vendorID, "New auction order",
		fmt.Sprintf("Order %s was created for your auction %s.", order.OrderID, order.AuctionID))
}

// LogSender is the default MessageSender: it writes the message to the log.
// Stands in for the transactional email service in local runs and tests.
type LogSender struct{}

// Send logs the message
func (LogSender) Send(recipient, subject, body string) error {
	utils.Info("notification", map[string]any{
		"recipient": recipient, "subject": subject, "body": body,
	})
	return nil
}
