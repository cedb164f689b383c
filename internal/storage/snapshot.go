package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// SaveSnapshot replaces the stored snapshot with s in a single SQL
// transaction. The snapshot is the unit of persistence: partial writes
// are never visible, and the newest-first transaction order is
// preserved through the position column.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, snap model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"accounts", "transactions", "debts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertAccounts(ctx, tx, snap.Accounts); err != nil {
		return err
	}
	if err := insertTransactions(ctx, tx, snap.Transactions); err != nil {
		return err
	}
	if err := insertDebts(ctx, tx, snap.Debts); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (id, saved_at) VALUES (1, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET saved_at = CURRENT_TIMESTAMP
	`); err != nil {
		return fmt.Errorf("failed to record snapshot save: %w", err)
	}

	return tx.Commit()
}

// LoadSnapshot returns the last-saved snapshot. A database that has
// never seen a save yields the default snapshot.
func (s *SQLiteStorage) LoadSnapshot(ctx context.Context) (model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return model.Snapshot{}, err
	}

	var saved int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshot_meta").Scan(&saved)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query snapshot state: %w", err)
	}
	if saved == 0 {
		return ledger.DefaultSnapshot(), nil
	}

	var snap model.Snapshot
	if snap.Accounts, err = s.loadAccounts(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Transactions, err = s.loadTransactions(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Debts, err = s.loadDebts(ctx); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

func insertAccounts(ctx context.Context, tx *sql.Tx, accounts []model.Account) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO accounts (id, position, name, color, balance)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare account insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, a := range accounts {
		if _, err := stmt.ExecContext(ctx, a.ID, i, a.Name, a.Color, a.Balance.String()); err != nil {
			return fmt.Errorf("failed to insert account %s: %w", a.ID, err)
		}
	}
	return nil
}

func insertTransactions(ctx context.Context, tx *sql.Tx, txns []model.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, position, date, type, account_id, category, amount, note, debt_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range txns {
		if _, err := stmt.ExecContext(ctx,
			t.ID, i, string(t.Date), string(t.Type), t.AccountID,
			t.Category, t.Amount.String(), t.Note, t.DebtID,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

func insertDebts(ctx context.Context, tx *sql.Tx, debts []model.Debt) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO debts (id, position, name, total_amount, paid_amount)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare debt insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, d := range debts {
		if _, err := stmt.ExecContext(ctx, d.ID, i, d.Name, d.TotalAmount.String(), d.PaidAmount.String()); err != nil {
			return fmt.Errorf("failed to insert debt %s: %w", d.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) loadAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, color, balance FROM accounts ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Color, &a.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *SQLiteStorage) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, type, account_id, category, amount, note, debt_id
		FROM transactions ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var date, typ string
		if err := rows.Scan(&t.ID, &date, &typ, &t.AccountID, &t.Category, &t.Amount, &t.Note, &t.DebtID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Date = model.Date(date)
		t.Type = model.TransactionType(typ)
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *SQLiteStorage) loadDebts(ctx context.Context) ([]model.Debt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, total_amount, paid_amount FROM debts ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		if err := rows.Scan(&d.ID, &d.Name, &d.TotalAmount, &d.PaidAmount); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}
