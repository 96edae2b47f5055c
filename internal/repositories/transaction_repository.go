package repositories

import (
	"context"
	"database/sql"
	"errors"

	"boutiqueBack/internal/models"
)

var ErrTransactionNotFound = models.ErrTransactionNotFound

type TransactionRepository struct {
	DB *sql.DB
}

// CreateTransaction persists the checkout in one database transaction:
// every cart line is frozen into the sold state at its captured price, then
// the transaction and its lines are written. A line whose product is no
// longer active rolls the whole checkout back with ErrProductAlreadySold.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Transaction{}, err
	}

	markQuery := `
		UPDATE products
		SET status = $1, sold_price = $2, sold_at = $3
		WHERE id = $4 AND status = $5
	`
	for _, line := range transaction.Lines {
		result, err := tx.ExecContext(ctx, markQuery,
			models.ProductStatusSold, line.Price, transaction.CreatedAt, line.ProductID, models.ProductStatusActive)
		if err != nil {
			tx.Rollback()
			return models.Transaction{}, err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			tx.Rollback()
			return models.Transaction{}, err
		}
		if affected == 0 {
			tx.Rollback()
			return models.Transaction{}, ErrProductAlreadySold
		}
	}

	txQuery := `INSERT INTO transactions (id, created_at, total) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, txQuery, transaction.ID, transaction.CreatedAt, transaction.Total); err != nil {
		tx.Rollback()
		return models.Transaction{}, err
	}

	lineQuery := `
		INSERT INTO transaction_lines (transaction_id, product_id, name, category, price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, line := range transaction.Lines {
		if _, err := tx.ExecContext(ctx, lineQuery, transaction.ID, line.ProductID, line.Name, line.Category, line.Price); err != nil {
			tx.Rollback()
			return models.Transaction{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

func (r *TransactionRepository) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	query := `SELECT id, created_at, total FROM transactions ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	index := make(map[string]int)
	for rows.Next() {
		var transaction models.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.CreatedAt, &transaction.Total); err != nil {
			return nil, err
		}
		index[transaction.ID] = len(transactions)
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return transactions, nil
	}

	lineRows, err := r.DB.QueryContext(ctx, `
		SELECT transaction_id, product_id, name, category, price
		FROM transaction_lines
	`)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var transactionID string
		var line models.TransactionLine
		if err := lineRows.Scan(&transactionID, &line.ProductID, &line.Name, &line.Category, &line.Price); err != nil {
			return nil, err
		}
		if i, ok := index[transactionID]; ok {
			transactions[i].Lines = append(transactions[i].Lines, line)
		}
	}
	return transactions, lineRows.Err()
}

func (r *TransactionRepository) GetTransactionByID(ctx context.Context, id string) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.DB.QueryRowContext(ctx, `SELECT id, created_at, total FROM transactions WHERE id = $1`, id).
		Scan(&transaction.ID, &transaction.CreatedAt, &transaction.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		return models.Transaction{}, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT product_id, name, category, price
		FROM transaction_lines
		WHERE transaction_id = $1
	`, id)
	if err != nil {
		return models.Transaction{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line models.TransactionLine
		if err := rows.Scan(&line.ProductID, &line.Name, &line.Category, &line.Price); err != nil {
			return models.Transaction{}, err
		}
		transaction.Lines = append(transaction.Lines, line)
	}
	return transaction, rows.Err()
}
