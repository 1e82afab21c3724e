package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/vyapar-labs/gstbill-api/internal/domain"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over PostgreSQL (pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, customer_id, customer_name, type, regime,
	taxable_total, cgst_total, sgst_total, igst_total, grand_total,
	total_received, total_pending, date, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.CustomerName, &inv.Type, &inv.Regime,
		&inv.TaxableTotal, &inv.CGSTTotal, &inv.SGSTTotal, &inv.IGSTTotal, &inv.GrandTotal,
		&inv.TotalReceived, &inv.TotalPending, &inv.Date, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.CustomerName, invoice.Type, invoice.Regime,
		invoice.TaxableTotal, invoice.CGSTTotal, invoice.SGSTTotal, invoice.IGSTTotal, invoice.GrandTotal,
		invoice.TotalReceived, invoice.TotalPending, invoice.Date, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persists one invoice line.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (id, invoice_id, product_id, product_name, hsn_code, quantity,
			unit_price, tax_rate, taxable_amount, cgst_amount, sgst_amount, igst_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.ProductID, line.ProductName, line.HSNCode, line.Quantity,
		line.UnitPrice, line.TaxRate, line.TaxableAmount, line.CGSTAmount, line.SGSTAmount,
		line.IGSTAmount, line.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID fetches one invoice header by ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(context.Background(),
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetLinesByInvoiceID fetches the invoice's lines in insertion order.
func (r *InvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, product_id, product_name, hsn_code, quantity,
			unit_price, tax_rate, taxable_amount, cgst_amount, sgst_amount, igst_amount, line_total
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ProductID, &l.ProductName, &l.HSNCode, &l.Quantity,
			&l.UnitPrice, &l.TaxRate, &l.TaxableAmount, &l.CGSTAmount, &l.SGSTAmount,
			&l.IGSTAmount, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByType lists the company's invoices of one type, newest first.
func (r *InvoiceRepo) ListByType(companyID, invoiceType string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1 AND type = $2 ORDER BY date DESC, created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, invoiceType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// SearchByCustomerName lists invoices whose denormalized customer name
// matches, case-insensitive. An empty name matches everything.
func (r *InvoiceRepo) SearchByCustomerName(companyID, name string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1 AND ($2 = '' OR customer_name ILIKE '%' || $2 || '%')
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, name)
	if err != nil {
		return nil, fmt.Errorf("search invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdatePayment writes the re-derived received/pending pair.
func (r *InvoiceRepo) UpdatePayment(id string, received, pending decimal.Decimal, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET total_received = $2, total_pending = $3, updated_at = $4 WHERE id = $1`,
		id, received, pending, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
