package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
	pgshared "github.com/senior-copycoders/Backend/pkg/postgres"
)

// ErrVersionConflict is returned when a concurrent writer got to the credit
// first. The caller reloads and retries.
var ErrVersionConflict = errors.New("optimistic locking conflict on credit")

// CreditRepo implements port.CreditRepository.
type CreditRepo struct {
	pool *pgxpool.Pool
}

// NewCreditRepo creates a new PostgreSQL-backed credit repository.
func NewCreditRepo(pool *pgxpool.Pool) *CreditRepo {
	return &CreditRepo{pool: pool}
}

// Save persists a credit and rewrites its full installment list in one
// transaction. The version guard keeps two writers from interleaving on the
// same credit; a failed guard rolls everything back, schedule included.
func (r *CreditRepo) Save(ctx context.Context, credit model.Credit) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		creditQuery := `
			INSERT INTO credits (
				id, user_id, credit_type, credit_amount, initial_payment,
				annual_rate, term_months, first_payment_date, payment,
				version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (id) DO UPDATE SET
				payment    = EXCLUDED.payment,
				version    = credits.version + 1,
				updated_at = EXCLUDED.updated_at
			WHERE credits.version = $10
		`
		tag, err := tx.Exec(ctx, creditQuery,
			credit.ID(), credit.UserID(), credit.CreditType().String(),
			credit.CreditAmount(), credit.InitialPayment(),
			credit.AnnualRate(), credit.TermMonths(), credit.FirstPaymentDate(), credit.Payment(),
			credit.Version(), credit.CreatedAt(), credit.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save credit: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrVersionConflict
		}

		// The recalculation rewrites an arbitrary suffix of the schedule,
		// so the stored list is replaced wholesale rather than diffed.
		if _, err := tx.Exec(ctx, `DELETE FROM installments WHERE credit_id = $1`, credit.ID()); err != nil {
			return fmt.Errorf("clear installments: %w", err)
		}

		installmentQuery := `
			INSERT INTO installments (
				credit_id, number, due_date, amount, interest, principal,
				balance_before, balance_after, status
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`
		for _, inst := range credit.Schedule() {
			_, err := tx.Exec(ctx, installmentQuery,
				credit.ID(), inst.Number, inst.DueDate,
				inst.Amount, inst.Interest, inst.Principal,
				inst.BalanceBefore, inst.BalanceAfter, inst.Status.String(),
			)
			if err != nil {
				return fmt.Errorf("save installment %d: %w", inst.Number, err)
			}
		}
		return nil
	})
}

// FindByID retrieves a credit and its schedule by ID.
func (r *CreditRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Credit, error) {
	query := creditSelect + ` WHERE id = $1`
	credit, err := scanCreditRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Credit{}, valueobject.ErrCreditNotFound
		}
		return model.Credit{}, err
	}

	schedule, err := r.loadSchedule(ctx, credit.ID())
	if err != nil {
		return model.Credit{}, err
	}
	return withSchedule(credit, schedule), nil
}

// FindByUserID retrieves all credits belonging to a user.
func (r *CreditRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Credit, error) {
	query := creditSelect + ` WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query credits: %w", err)
	}
	defer rows.Close()

	var credits []model.Credit
	for rows.Next() {
		credit, err := scanCreditRow(rows)
		if err != nil {
			return nil, err
		}
		schedule, err := r.loadSchedule(ctx, credit.ID())
		if err != nil {
			return nil, err
		}
		credits = append(credits, withSchedule(credit, schedule))
	}
	return credits, rows.Err()
}

// Delete removes a credit and its installments together, so no orphaned
// installments can remain.
func (r *CreditRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM installments WHERE credit_id = $1`, id); err != nil {
			return fmt.Errorf("delete installments: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM credits WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete credit: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return valueobject.ErrCreditNotFound
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

const creditSelect = `
	SELECT id, user_id, credit_type, credit_amount, initial_payment,
	       annual_rate, term_months, first_payment_date, payment,
	       version, created_at, updated_at
	FROM credits`

func scanCreditRow(s pgx.Row) (model.Credit, error) {
	var (
		id, userID           uuid.UUID
		creditTypeStr        string
		creditAmount         decimal.Decimal
		initialPayment       decimal.Decimal
		annualRate           decimal.Decimal
		termMonths           int
		firstPaymentDate     time.Time
		payment              decimal.Decimal
		version              int
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &userID, &creditTypeStr, &creditAmount, &initialPayment,
		&annualRate, &termMonths, &firstPaymentDate, &payment,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Credit{}, err
		}
		return model.Credit{}, fmt.Errorf("scan credit: %w", err)
	}

	creditType, err := valueobject.NewCreditType(creditTypeStr)
	if err != nil {
		return model.Credit{}, fmt.Errorf("parse credit type: %w", err)
	}

	return model.ReconstructCredit(
		id, userID, creditType,
		creditAmount, initialPayment, annualRate,
		termMonths, firstPaymentDate, payment,
		nil, version, createdAt, updatedAt,
	), nil
}

func withSchedule(credit model.Credit, schedule []model.Installment) model.Credit {
	return model.ReconstructCredit(
		credit.ID(), credit.UserID(), credit.CreditType(),
		credit.CreditAmount(), credit.InitialPayment(), credit.AnnualRate(),
		credit.TermMonths(), credit.FirstPaymentDate(), credit.Payment(),
		schedule, credit.Version(), credit.CreatedAt(), credit.UpdatedAt(),
	)
}

func (r *CreditRepo) loadSchedule(ctx context.Context, creditID uuid.UUID) ([]model.Installment, error) {
	query := `
		SELECT number, due_date, amount, interest, principal,
		       balance_before, balance_after, status
		FROM installments
		WHERE credit_id = $1
		ORDER BY number
	`
	rows, err := r.pool.Query(ctx, query, creditID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var schedule []model.Installment
	for rows.Next() {
		var (
			inst      model.Installment
			statusStr string
		)
		err := rows.Scan(
			&inst.Number, &inst.DueDate, &inst.Amount, &inst.Interest, &inst.Principal,
			&inst.BalanceBefore, &inst.BalanceAfter, &statusStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		status, err := valueobject.NewInstallmentStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("parse installment status: %w", err)
		}
		inst.Status = status
		schedule = append(schedule, inst)
	}
	return schedule, rows.Err()
}
