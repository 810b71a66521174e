package gifts

import (
	"context"
	"database/sql"
	"errors"

	"ktap/pkg/content"
)

var (
	ErrGiftNotFound        = errors.New("gift not found")
	ErrSenderNotFound      = errors.New("sender not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Send describes one gift going from a user to the author of an item.
type Send struct {
	GiftID      int64
	SenderID    int64
	RecipientID int64
	Kind        content.Kind
	ItemID      string
}

type GiftRepoSQL struct {
	db *sql.DB
}

func NewGiftRepoSQL(db *sql.DB) *GiftRepoSQL {
	return &GiftRepoSQL{db: db}
}

func (repo *GiftRepoSQL) List(ctx context.Context) ([]*content.Gift, error) {
	rows, err := repo.db.QueryContext(ctx, "SELECT `id`, `name`, `description`, `icon`, `price` FROM gifts ORDER BY `price`, `id`")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*content.Gift{}
	for rows.Next() {
		g := &content.Gift{}
		err = rows.Scan(&g.ID, &g.Name, &g.Description, &g.URL, &g.Price)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

// Receipts groups every gift an item received by gift type.
func (repo *GiftRepoSQL) Receipts(ctx context.Context, kind content.Kind, itemID string) ([]*content.GiftReceipt, int64, error) {
	query := "SELECT g.`id`, g.`name`, g.`description`, g.`icon`, g.`price`, COUNT(*) FROM gift_sends s " +
		"JOIN gifts g ON g.`id` = s.`gift_id` WHERE s.`item_kind` = ? AND s.`item_id` = ? " +
		"GROUP BY g.`id`, g.`name`, g.`description`, g.`icon`, g.`price` ORDER BY g.`id`"
	rows, err := repo.db.QueryContext(ctx, query, string(kind), itemID)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := []*content.GiftReceipt{}
	var total int64
	for rows.Next() {
		r := &content.GiftReceipt{}
		err = rows.Scan(&r.ID, &r.Name, &r.Description, &r.URL, &r.Price, &r.Count)
		if err != nil {
			return nil, 0, err
		}
		total += r.Count
		res = append(res, r)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return res, total, nil
}

// Send debits the sender and records the gift in one transaction and
// returns the sender's new balance.
func (repo *GiftRepoSQL) Send(ctx context.Context, s *Send) (int64, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var price int64
	err = tx.QueryRowContext(ctx, "SELECT `price` FROM gifts WHERE id = ?", s.GiftID).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, ErrGiftNotFound
	}
	if err != nil {
		return 0, err
	}

	var balance int64
	err = tx.QueryRowContext(ctx, "SELECT `balance` FROM users WHERE id = ? FOR UPDATE", s.SenderID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrSenderNotFound
	}
	if err != nil {
		return 0, err
	}

	if balance < price {
		return 0, ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx, "UPDATE users SET `balance` = `balance` - ? WHERE id = ?", price, s.SenderID)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO gift_sends (`gift_id`, `sender_id`, `recipient_id`, `item_kind`, `item_id`) VALUES (?, ?, ?, ?, ?)",
		s.GiftID, s.SenderID, s.RecipientID, string(s.Kind), s.ItemID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return balance - price, nil
}
