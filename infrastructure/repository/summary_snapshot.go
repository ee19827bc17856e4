package repository

//go:generate mockgen -source=summary_snapshot.go -destination=mocks/mock_summary_snapshot.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/econoapp-api/infrastructure/database/postgres"
	"github.com/vfg2006/econoapp-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	summarySnapshotTable = "monthly_summary_snapshot ms"
)

var summarySnapshotColumns = []string{
	"ms.id",
	"ms.month",
	"ms.total_income",
	"ms.total_expenses",
	"ms.balance",
	"ms.savings",
	"ms.transaction_count",
	"ms.investment_count",
	"ms.total_invested",
	"ms.investments_value",
	"ms.top_categories",
	"ms.created_at",
	"ms.updated_at",
}

// SummarySnapshotRepository arquiva no PostgreSQL os resumos mensais calculados
type SummarySnapshotRepository interface {
	GetByMonth(ctx context.Context, month string) (*domain.SummarySnapshot, error)
	// List retorna os resumos arquivados do mês mais recente para o mais antigo
	List(ctx context.Context) ([]*domain.SummarySnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.SummarySnapshot) error
}

type summarySnapshotRepository struct {
	conn postgres.Queryer
}

func NewSummarySnapshotRepository(conn postgres.Queryer) SummarySnapshotRepository {
	return &summarySnapshotRepository{
		conn: conn,
	}
}

func (r *summarySnapshotRepository) GetByMonth(ctx context.Context, month string) (*domain.SummarySnapshot, error) {
	query, args, err := squirrel.
		Select(summarySnapshotColumns...).
		From(summarySnapshotTable).
		Where(squirrel.Eq{"ms.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSummarySnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
	}
	return snapshot, nil
}

func (r *summarySnapshotRepository) List(ctx context.Context) ([]*domain.SummarySnapshot, error) {
	query, args, err := squirrel.
		Select(summarySnapshotColumns...).
		From(summarySnapshotTable).
		OrderBy("ms.month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.SummarySnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSummarySnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *summarySnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.SummarySnapshot) error {
	topCategories, err := json.Marshal(snapshot.TopCategories)
	if err != nil {
		return fmt.Errorf("erro ao serializar categorias: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_summary_snapshot").
		Columns(
			"id",
			"month",
			"total_income",
			"total_expenses",
			"balance",
			"savings",
			"transaction_count",
			"investment_count",
			"total_invested",
			"investments_value",
			"top_categories",
		).
		Values(
			snapshot.ID,
			snapshot.Month,
			snapshot.TotalIncome,
			snapshot.TotalExpenses,
			snapshot.Balance,
			snapshot.Savings,
			snapshot.TransactionCount,
			snapshot.InvestmentCount,
			snapshot.TotalInvested,
			snapshot.InvestmentsValue,
			string(topCategories),
		).
		Suffix(`
			ON CONFLICT (month) DO UPDATE SET
				total_income = EXCLUDED.total_income,
				total_expenses = EXCLUDED.total_expenses,
				balance = EXCLUDED.balance,
				savings = EXCLUDED.savings,
				transaction_count = EXCLUDED.transaction_count,
				investment_count = EXCLUDED.investment_count,
				total_invested = EXCLUDED.total_invested,
				investments_value = EXCLUDED.investments_value,
				top_categories = EXCLUDED.top_categories,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummarySnapshot(row rowScanner) (*domain.SummarySnapshot, error) {
	snapshot := &domain.SummarySnapshot{}
	var topCategories []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Month,
		&snapshot.TotalIncome,
		&snapshot.TotalExpenses,
		&snapshot.Balance,
		&snapshot.Savings,
		&snapshot.TransactionCount,
		&snapshot.InvestmentCount,
		&snapshot.TotalInvested,
		&snapshot.InvestmentsValue,
		&topCategories,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.TopCategories = make([]domain.CategoryTotal, 0)
	if len(topCategories) > 0 {
		if err := json.Unmarshal(topCategories, &snapshot.TopCategories); err != nil {
			return nil, fmt.Errorf("erro ao decodificar categorias: %w", err)
		}
	}

	return snapshot, nil
}
