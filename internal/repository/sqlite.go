package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	_ "github.com/glebarez/go-sqlite"
	"github.com/shopspring/decimal"
)

// SQLiteRepo is the authoritative AuctionDB backed by SQLite.
// Monetary amounts are stored as integer minor units (cents) so that the
// conditional bid update can compare them in SQL.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens (or creates) the database at dbPath with WAL mode
// enabled and ensures the schema exists.
func NewSQLiteRepo(dbPath string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteRepo{db: db}, nil
}

func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS auctions (
			auction_id       TEXT PRIMARY KEY,
			product_id       TEXT NOT NULL,
			vendor_id        TEXT NOT NULL,
			title            TEXT NOT NULL,
			status           TEXT NOT NULL,
			registration_fee INTEGER NOT NULL,
			start_date       INTEGER NOT NULL,
			end_date         INTEGER NOT NULL,
			current_bid      INTEGER NOT NULL DEFAULT 0,
			bid_count        INTEGER NOT NULL DEFAULT 0,
			winner_id        TEXT NOT NULL DEFAULT '',
			winning_bid      INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS bids (
			bid_id     TEXT PRIMARY KEY,
			auction_id TEXT NOT NULL,
			user_id    TEXT NOT NULL,
			amount     INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_bids_auction ON bids(auction_id, amount DESC, created_at ASC);`,
		`CREATE TABLE IF NOT EXISTS registrations (
			registration_id TEXT PRIMARY KEY,
			auction_id      TEXT NOT NULL,
			user_id         TEXT NOT NULL,
			fee_paid        INTEGER NOT NULL,
			payment_status  TEXT NOT NULL,
			is_winner       INTEGER NOT NULL DEFAULT 0,
			deposit_applied INTEGER NOT NULL DEFAULT 0,
			created_at      INTEGER NOT NULL,
			UNIQUE (auction_id, user_id)
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id   TEXT PRIMARY KEY,
			auction_id TEXT NOT NULL UNIQUE,
			user_id    TEXT NOT NULL,
			product_id TEXT NOT NULL,
			amount     INTEGER NOT NULL,
			status     TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}

func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

func scanAuction(row interface{ Scan(...any) error }) (model.Auction, error) {
	var a model.Auction
	var fee, cur, win, start, end int64
	err := row.Scan(&a.AuctionID, &a.ProductID, &a.VendorID, &a.Title, &a.Status,
		&fee, &start, &end, &cur, &a.BidCount, &a.WinnerID, &win)
	if err != nil {
		return model.Auction{}, err
	}
	a.RegistrationFee = fromCents(fee)
	a.CurrentBid = fromCents(cur)
	a.WinningBid = fromCents(win)
	a.StartDate = time.Unix(0, start).UTC()
	a.EndDate = time.Unix(0, end).UTC()
	return a, nil
}

const auctionCols = `auction_id, product_id, vendor_id, title, status,
	registration_fee, start_date, end_date, current_bid, bid_count, winner_id, winning_bid`

// GetAuction returns an auction by id
func (r *SQLiteRepo) GetAuction(auctionID string) (model.Auction, error) {
	row := r.db.QueryRow(`SELECT `+auctionCols+` FROM auctions WHERE auction_id = ?`, auctionID)
	a, err := scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// PutAuction inserts or replaces an auction row
func (r *SQLiteRepo) PutAuction(a model.Auction) error {
	_, err := r.db.Exec(`INSERT INTO auctions (`+auctionCols+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(auction_id) DO UPDATE SET
			product_id=excluded.product_id, vendor_id=excluded.vendor_id,
			title=excluded.title, status=excluded.status,
			registration_fee=excluded.registration_fee,
			start_date=excluded.start_date, end_date=excluded.end_date,
			current_bid=excluded.current_bid, bid_count=excluded.bid_count,
			winner_id=excluded.winner_id, winning_bid=excluded.winning_bid`,
		a.AuctionID, a.ProductID, a.VendorID, a.Title, a.Status,
		toCents(a.RegistrationFee), a.StartDate.UnixNano(), a.EndDate.UnixNano(),
		toCents(a.CurrentBid), a.BidCount, a.WinnerID, toCents(a.WinningBid))
	if err != nil {
		return fmt.Errorf("put auction %s: %w", a.AuctionID, err)
	}
	return nil
}

func (r *SQLiteRepo) listAuctions(query string, args ...any) ([]model.Auction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListEndedAuctions returns non-finalized auctions whose end date has passed.
func (r *SQLiteRepo) ListEndedAuctions(now time.Time) ([]model.Auction, error) {
	out, err := r.listAuctions(`SELECT `+auctionCols+` FROM auctions
		WHERE status IN ('approved', 'active') AND end_date < ?`, now.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("list ended auctions: %w", err)
	}
	return out, nil
}

// ListStartableAuctions returns approved auctions whose start date has passed.
func (r *SQLiteRepo) ListStartableAuctions(now time.Time) ([]model.Auction, error) {
	out, err := r.listAuctions(`SELECT `+auctionCols+` FROM auctions
		WHERE status = 'approved' AND start_date <= ?`, now.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("list startable auctions: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepo) guardedExec(query string, args ...any) (bool, error) {
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkAuctionActive transitions approved -> active
func (r *SQLiteRepo) MarkAuctionActive(auctionID string) (bool, error) {
	applied, err := r.guardedExec(`UPDATE auctions SET status = 'active'
		WHERE auction_id = ? AND status = 'approved'`, auctionID)
	if err != nil {
		return false, fmt.Errorf("mark auction %s active: %w", auctionID, err)
	}
	return applied, nil
}

// MarkAuctionSold transitions {approved,active} -> sold with the winner recorded
func (r *SQLiteRepo) MarkAuctionSold(auctionID, winnerID string, winningBid decimal.Decimal) (bool, error) {
	applied, err := r.guardedExec(`UPDATE auctions
		SET status = 'sold', winner_id = ?, winning_bid = ?
		WHERE auction_id = ? AND status IN ('approved', 'active')`,
		winnerID, toCents(winningBid), auctionID)
	if err != nil {
		return false, fmt.Errorf("mark auction %s sold: %w", auctionID, err)
	}
	return applied, nil
}

// MarkAuctionUnsold transitions {approved,active} -> unsold
func (r *SQLiteRepo) MarkAuctionUnsold(auctionID string) (bool, error) {
	applied, err := r.guardedExec(`UPDATE auctions SET status = 'unsold'
		WHERE auction_id = ? AND status IN ('approved', 'active')`, auctionID)
	if err != nil {
		return false, fmt.Errorf("mark auction %s unsold: %w", auctionID, err)
	}
	return applied, nil
}

// CompleteAuctionSale transitions sold -> completed
func (r *SQLiteRepo) CompleteAuctionSale(auctionID string) (bool, error) {
	applied, err := r.guardedExec(`UPDATE auctions SET status = 'completed'
		WHERE auction_id = ? AND status = 'sold'`, auctionID)
	if err != nil {
		return false, fmt.Errorf("complete auction %s: %w", auctionID, err)
	}
	return applied, nil
}

// AppendBid records a bid inside one transaction with the denormalized
// current_bid bump. The UPDATE is conditional on status and on the previous
// current_bid, so a concurrent equal-or-lower bid loses the race cleanly.
func (r *SQLiteRepo) AppendBid(bid model.Bid) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	defer tx.Rollback()

	amount := toCents(bid.Amount)
	res, err := tx.Exec(`UPDATE auctions
		SET current_bid = ?, bid_count = bid_count + 1
		WHERE auction_id = ? AND status = 'active' AND current_bid < ?`,
		amount, bid.AuctionID, amount)
	if err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	if n == 0 {
		return r.classifyBidRejection(tx, bid)
	}

	_, err = tx.Exec(`INSERT INTO bids (bid_id, auction_id, user_id, amount, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		bid.BidID, bid.AuctionID, bid.UserID, amount, bid.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

// classifyBidRejection maps a failed conditional update to the sentinel the
// caller reports: missing auction, wrong status, or amount not above current.
func (r *SQLiteRepo) classifyBidRejection(tx *sql.Tx, bid model.Bid) error {
	var status string
	var current int64
	err := tx.QueryRow(`SELECT status, current_bid FROM auctions WHERE auction_id = ?`,
		bid.AuctionID).Scan(&status, &current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	if model.AuctionStatus(status) != model.AuctionActive {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotActive)
	}
	return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrBidTooLow)
}

func scanBid(row interface{ Scan(...any) error }) (model.Bid, error) {
	var b model.Bid
	var amount, created int64
	if err := row.Scan(&b.BidID, &b.AuctionID, &b.UserID, &amount, &created); err != nil {
		return model.Bid{}, err
	}
	b.Amount = fromCents(amount)
	b.CreatedAt = time.Unix(0, created).UTC()
	return b, nil
}

// GetBidsByAuction returns all bids for an auction in acceptance order
func (r *SQLiteRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	rows, err := r.db.Query(`SELECT bid_id, auction_id, user_id, amount, created_at
		FROM bids WHERE auction_id = ? ORDER BY created_at ASC`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	defer rows.Close()

	var out []model.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return out, nil
}

// GetWinningBid returns the top bid: highest amount, earliest timestamp on ties.
func (r *SQLiteRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	row := r.db.QueryRow(`SELECT bid_id, auction_id, user_id, amount, created_at
		FROM bids WHERE auction_id = ?
		ORDER BY amount DESC, created_at ASC LIMIT 1`, auctionID)
	b, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, err)
	}
	return b, nil
}

func scanRegistration(row interface{ Scan(...any) error }) (model.Registration, error) {
	var reg model.Registration
	var fee, created int64
	var isWinner, depositApplied int
	err := row.Scan(&reg.RegistrationID, &reg.AuctionID, &reg.UserID, &fee,
		&reg.PaymentStatus, &isWinner, &depositApplied, &created)
	if err != nil {
		return model.Registration{}, err
	}
	reg.FeePaid = fromCents(fee)
	reg.IsWinner = isWinner != 0
	reg.DepositApplied = depositApplied != 0
	reg.CreatedAt = time.Unix(0, created).UTC()
	return reg, nil
}

const regCols = `registration_id, auction_id, user_id, fee_paid,
	payment_status, is_winner, deposit_applied, created_at`

// UpsertRegistration inserts a pending registration or reuses the existing
// row for the pair. The (auction_id, user_id) unique constraint backs this.
func (r *SQLiteRepo) UpsertRegistration(reg model.Registration) (model.Registration, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return model.Registration{}, fmt.Errorf("upsert registration: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT `+regCols+` FROM registrations
		WHERE auction_id = ? AND user_id = ?`, reg.AuctionID, reg.UserID)
	existing, err := scanRegistration(row)
	switch {
	case err == nil:
		if existing.PaymentStatus == model.PaymentPaid {
			return existing, tx.Commit()
		}
		// still pending: reissue under the new checkout reference
		if _, err := tx.Exec(`UPDATE registrations
			SET registration_id = ?, fee_paid = ?
			WHERE auction_id = ? AND user_id = ?`,
			reg.RegistrationID, toCents(reg.FeePaid), reg.AuctionID, reg.UserID); err != nil {
			return model.Registration{}, fmt.Errorf("upsert registration: %w", err)
		}
		reg.CreatedAt = existing.CreatedAt
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.Exec(`INSERT INTO registrations (`+regCols+`)
			VALUES (?, ?, ?, ?, ?, 0, 0, ?)`,
			reg.RegistrationID, reg.AuctionID, reg.UserID, toCents(reg.FeePaid),
			reg.PaymentStatus, reg.CreatedAt.UnixNano()); err != nil {
			return model.Registration{}, fmt.Errorf("upsert registration: %w", err)
		}
	default:
		return model.Registration{}, fmt.Errorf("upsert registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Registration{}, fmt.Errorf("upsert registration: %w", err)
	}
	return reg, nil
}

// GetRegistration returns the registration for an (auction, user) pair
func (r *SQLiteRepo) GetRegistration(auctionID, userID string) (model.Registration, error) {
	row := r.db.QueryRow(`SELECT `+regCols+` FROM registrations
		WHERE auction_id = ? AND user_id = ?`, auctionID, userID)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Registration{}, fmt.Errorf("get registration for auction %s user %s: %w",
			auctionID, userID, auctionerrors.ErrRegistrationNotFound)
	}
	if err != nil {
		return model.Registration{}, fmt.Errorf("get registration for auction %s user %s: %w",
			auctionID, userID, err)
	}
	return reg, nil
}

// GetRegistrationByID returns a registration by its id
func (r *SQLiteRepo) GetRegistrationByID(registrationID string) (model.Registration, error) {
	row := r.db.QueryRow(`SELECT `+regCols+` FROM registrations WHERE registration_id = ?`, registrationID)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Registration{}, fmt.Errorf("get registration %s: %w",
			registrationID, auctionerrors.ErrRegistrationNotFound)
	}
	if err != nil {
		return model.Registration{}, fmt.Errorf("get registration %s: %w", registrationID, err)
	}
	return reg, nil
}

func (r *SQLiteRepo) listRegistrations(query string, args ...any) ([]model.Registration, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// GetRegistrationsByUser returns all registrations held by a user
func (r *SQLiteRepo) GetRegistrationsByUser(userID string) ([]model.Registration, error) {
	out, err := r.listRegistrations(`SELECT `+regCols+` FROM registrations WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("get registrations for user %s: %w", userID, err)
	}
	return out, nil
}

// GetRegistrationsByAuction returns all registrations for an auction
func (r *SQLiteRepo) GetRegistrationsByAuction(auctionID string) ([]model.Registration, error) {
	out, err := r.listRegistrations(`SELECT `+regCols+` FROM registrations WHERE auction_id = ?`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get registrations for auction %s: %w", auctionID, err)
	}
	return out, nil
}

// ConfirmRegistration flips pending -> paid; a second delivery matches zero rows.
func (r *SQLiteRepo) ConfirmRegistration(registrationID string) (bool, error) {
	applied, err := r.guardedExec(`UPDATE registrations SET payment_status = 'paid'
		WHERE registration_id = ? AND payment_status = 'pending'`, registrationID)
	if err != nil {
		return false, fmt.Errorf("confirm registration %s: %w", registrationID, err)
	}
	if !applied {
		var one int
		err := r.db.QueryRow(`SELECT 1 FROM registrations WHERE registration_id = ?`,
			registrationID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("confirm registration %s: %w",
				registrationID, auctionerrors.ErrRegistrationNotFound)
		}
		if err != nil {
			return false, fmt.Errorf("confirm registration %s: %w", registrationID, err)
		}
	}
	return applied, nil
}

// DeletePendingRegistration deletes only while pending; paid rows are untouchable.
func (r *SQLiteRepo) DeletePendingRegistration(registrationID string) (bool, error) {
	applied, err := r.guardedExec(`DELETE FROM registrations
		WHERE registration_id = ? AND payment_status = 'pending'`, registrationID)
	if err != nil {
		return false, fmt.Errorf("delete pending registration %s: %w", registrationID, err)
	}
	return applied, nil
}

// MarkRegistrationWinner flags the pair's registration as the auction winner
func (r *SQLiteRepo) MarkRegistrationWinner(auctionID, userID string) error {
	applied, err := r.guardedExec(`UPDATE registrations SET is_winner = 1
		WHERE auction_id = ? AND user_id = ?`, auctionID, userID)
	if err != nil {
		return fmt.Errorf("mark winner registration for auction %s user %s: %w", auctionID, userID, err)
	}
	if !applied {
		return fmt.Errorf("mark winner registration for auction %s user %s: %w",
			auctionID, userID, auctionerrors.ErrRegistrationNotFound)
	}
	return nil
}

// MarkDepositApplied records the entry fee as credited against the balance
func (r *SQLiteRepo) MarkDepositApplied(auctionID, userID string) error {
	applied, err := r.guardedExec(`UPDATE registrations SET deposit_applied = 1
		WHERE auction_id = ? AND user_id = ?`, auctionID, userID)
	if err != nil {
		return fmt.Errorf("mark deposit applied for auction %s user %s: %w", auctionID, userID, err)
	}
	if !applied {
		return fmt.Errorf("mark deposit applied for auction %s user %s: %w",
			auctionID, userID, auctionerrors.ErrRegistrationNotFound)
	}
	return nil
}

func scanOrder(row interface{ Scan(...any) error }) (model.Order, error) {
	var o model.Order
	var amount, created int64
	err := row.Scan(&o.OrderID, &o.AuctionID, &o.UserID, &o.ProductID, &amount, &o.Status, &created)
	if err != nil {
		return model.Order{}, err
	}
	o.Amount = fromCents(amount)
	o.CreatedAt = time.Unix(0, created).UTC()
	return o, nil
}

const orderCols = `order_id, auction_id, user_id, product_id, amount, status, created_at`

// CreateOrderIfAbsent inserts the order unless one already references the
// auction. The UNIQUE constraint on auction_id makes concurrent duplicate
// webhooks collapse into a single insert.
func (r *SQLiteRepo) CreateOrderIfAbsent(order model.Order) (model.Order, bool, error) {
	res, err := r.db.Exec(`INSERT INTO orders (`+orderCols+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(auction_id) DO NOTHING`,
		order.OrderID, order.AuctionID, order.UserID, order.ProductID,
		toCents(order.Amount), order.Status, order.CreatedAt.UnixNano())
	if err != nil {
		return model.Order{}, false, fmt.Errorf("create order for auction %s: %w", order.AuctionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Order{}, false, fmt.Errorf("create order for auction %s: %w", order.AuctionID, err)
	}
	if n == 0 {
		existing, err := r.GetOrderByAuction(order.AuctionID)
		if err != nil {
			return model.Order{}, false, err
		}
		return existing, false, nil
	}
	return order, true, nil
}

// GetOrder returns an order by id
func (r *SQLiteRepo) GetOrder(orderID string) (model.Order, error) {
	row := r.db.QueryRow(`SELECT `+orderCols+` FROM orders WHERE order_id = ?`, orderID)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, auctionerrors.ErrOrderNotFound)
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return o, nil
}

// GetOrderByAuction returns the order created for an auction, if any
func (r *SQLiteRepo) GetOrderByAuction(auctionID string) (model.Order, error) {
	row := r.db.QueryRow(`SELECT `+orderCols+` FROM orders WHERE auction_id = ?`, auctionID)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, fmt.Errorf("get order for auction %s: %w", auctionID, auctionerrors.ErrOrderNotFound)
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("get order for auction %s: %w", auctionID, err)
	}
	return o, nil
}

// SetOrderStatus applies a guarded status transition
func (r *SQLiteRepo) SetOrderStatus(orderID string, from, to model.OrderStatus) (bool, error) {
	applied, err := r.guardedExec(`UPDATE orders SET status = ?
		WHERE order_id = ? AND status = ?`, to, orderID, from)
	if err != nil {
		return false, fmt.Errorf("set order %s status: %w", orderID, err)
	}
	return applied, nil
}
