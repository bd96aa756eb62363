package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type TxRepo struct {
	pool *pgxpool.Pool
}

// amount goes through text, numeric stays exact end to end.
const txColumns = `id, tx_hash, asset, from_address, to_address, amount::text, gas_price, gas_limit, nonce, status, created_at, updated_at`

func scanTx(row pgx.Row) (*Transaction, error) {
	t := &Transaction{}
	var amount string
	err := row.Scan(&t.ID, &t.TxHash, &t.Asset, &t.FromAddress, &t.ToAddress, &amount,
		&t.GasPrice, &t.GasLimit, &t.Nonce, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, wrapErr(err, "parse amount")
	}
	return t, nil
}

// Create records a pending transaction before anything is broadcast.
func (r *TxRepo) Create(ctx context.Context, asset, from, to string, amount decimal.Decimal) (*Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (id, asset, from_address, to_address, amount, status)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6)
		 RETURNING `+txColumns,
		uuid.New(), asset, from, to, amount.String(), TxPending)

	t, err := scanTx(row)
	if err != nil {
		return nil, wrapErr(err, "insert transaction")
	}
	return t, nil
}

func (r *TxRepo) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+txColumns+` FROM transactions WHERE id = $1`, id)

	t, err := scanTx(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTxNotFound
	}
	if err != nil {
		return nil, wrapErr(err, "select transaction by id")
	}
	return t, nil
}

func (r *TxRepo) GetByHash(ctx context.Context, hash string) (*Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+txColumns+` FROM transactions WHERE tx_hash = $1`, hash)

	t, err := scanTx(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTxNotFound
	}
	if err != nil {
		return nil, wrapErr(err, "select transaction by hash")
	}
	return t, nil
}

// ListByWallet returns the wallet's outgoing transactions, newest first.
func (r *TxRepo) ListByWallet(ctx context.Context, address string, offset, limit int) ([]*Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+txColumns+` FROM transactions
		 WHERE from_address = $1
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`,
		address, offset, limit)
	if err != nil {
		return nil, wrapErr(err, "list transactions")
	}
	defer rows.Close()

	txs := make([]*Transaction, 0, limit)
	for rows.Next() {
		t, err := scanTx(rows)
		if err != nil {
			return nil, wrapErr(err, "scan transaction")
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *TxRepo) CountByWallet(ctx context.Context, address string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM transactions WHERE from_address = $1`, address).Scan(&total)
	if err != nil {
		return 0, wrapErr(err, "count transactions")
	}
	return total, nil
}

// MarkSent attaches the broadcast result to a pending row.
func (r *TxRepo) MarkSent(ctx context.Context, id uuid.UUID, hash string, gasPrice, gasLimit, nonce int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE transactions
		 SET tx_hash = $2, gas_price = $3, gas_limit = $4, nonce = $5, updated_at = now()
		 WHERE id = $1`,
		id, hash, gasPrice, gasLimit, nonce)
	if err != nil {
		return wrapErr(err, "mark transaction sent")
	}
	if tag.RowsAffected() == 0 {
		return ErrTxNotFound
	}
	return nil
}

func (r *TxRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status TxStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE transactions SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	if err != nil {
		return wrapErr(err, "update transaction status")
	}
	if tag.RowsAffected() == 0 {
		return ErrTxNotFound
	}
	return nil
}
