package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type WalletRepo struct {
	pool *pgxpool.Pool
}

const walletColumns = `id, address, private_key, status, created_at, updated_at, deleted_at`

func scanWallet(row pgx.Row) (*Wallet, error) {
	w := &Wallet{}
	err := row.Scan(&w.ID, &w.Address, &w.PrivateKey, &w.Status, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a new active wallet and returns the stored row.
func (r *WalletRepo) Create(ctx context.Context, address, privateKey string) (*Wallet, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO wallets (id, address, private_key, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+walletColumns,
		uuid.New(), address, privateKey, WalletActive)

	w, err := scanWallet(row)
	if err != nil {
		return nil, wrapErr(err, "insert wallet")
	}
	return w, nil
}

func (r *WalletRepo) GetByAddress(ctx context.Context, address string) (*Wallet, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets
		 WHERE address = $1 AND status = $2 AND deleted_at IS NULL`,
		address, WalletActive)

	w, err := scanWallet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		return nil, wrapErr(err, "select wallet by address")
	}
	return w, nil
}

// List returns active wallets, newest first.
func (r *WalletRepo) List(ctx context.Context, offset, limit int) ([]*Wallet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+walletColumns+` FROM wallets
		 WHERE status = $1 AND deleted_at IS NULL
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`,
		WalletActive, offset, limit)
	if err != nil {
		return nil, wrapErr(err, "list wallets")
	}
	defer rows.Close()

	wallets := make([]*Wallet, 0, limit)
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, wrapErr(err, "scan wallet")
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

func (r *WalletRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM wallets WHERE status = $1 AND deleted_at IS NULL`,
		WalletActive).Scan(&total)
	if err != nil {
		return 0, wrapErr(err, "count wallets")
	}
	return total, nil
}

// Delete soft-deletes a wallet, the row stays for audit. Returns the
// row as it was stored after the update.
func (r *WalletRepo) Delete(ctx context.Context, address string) (*Wallet, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE wallets
		 SET status = $2, deleted_at = now(), updated_at = now()
		 WHERE address = $1 AND status = $3 AND deleted_at IS NULL
		 RETURNING `+walletColumns,
		address, WalletInactive, WalletActive)

	w, err := scanWallet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		return nil, wrapErr(err, "delete wallet")
	}
	return w, nil
}
