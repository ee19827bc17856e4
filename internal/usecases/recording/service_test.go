package recording

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/infrastructure/repository/mocks"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func validTransactionRequest() *domain.CreateTransactionRequest {
	return &domain.CreateTransactionRequest{
		Date:          "2024-05-10",
		Type:          domain.TransactionTypeExpense,
		Description:   "Mercado",
		Category:      "Alimentação",
		Amount:        150.75,
		PaymentMethod: domain.PaymentMethodDebit,
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "esperado ValidationError, recebido %v", err)

	fields := make([]string, 0, len(validationErr.Details))
	for _, d := range validationErr.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestService_CreateTransaction(t *testing.T) {
	tests := []struct {
		name     string
		request  func() *domain.CreateTransactionRequest
		setup    func(store *mocks.MockRecordStore)
		validate func(t *testing.T, transaction *domain.Transaction, err error)
	}{
		{
			name:    "valor negativo é rejeitado sem gravar",
			request: func() *domain.CreateTransactionRequest { r := validTransactionRequest(); r.Amount = -5; return r },
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, transaction *domain.Transaction, err error) {
				assert.Nil(t, transaction)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Equal(t, []string{"amount"}, fieldsOf(t, err))
			},
		},
		{
			name: "todos os campos inválidos são reportados",
			request: func() *domain.CreateTransactionRequest {
				return &domain.CreateTransactionRequest{Date: "10/05/2024", Type: "GIFT", PaymentMethod: "BOLETO"}
			},
			setup: func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, transaction *domain.Transaction, err error) {
				assert.Equal(t, []string{"date", "type", "description", "category", "amount", "paymentMethod"}, fieldsOf(t, err))
			},
		},
		{
			name:    "data inexistente no calendário é rejeitada",
			request: func() *domain.CreateTransactionRequest { r := validTransactionRequest(); r.Date = "2024-02-30"; return r },
			setup:   func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, transaction *domain.Transaction, err error) {
				assert.Equal(t, []string{"date"}, fieldsOf(t, err))
			},
		},
		{
			name:    "descrição com marcação HTML é rejeitada",
			request: func() *domain.CreateTransactionRequest { r := validTransactionRequest(); r.Description = "<b></b>"; return r },
			setup:   func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, transaction *domain.Transaction, err error) {
				assert.Equal(t, []string{"description"}, fieldsOf(t, err))
			},
		},
		{
			name: "transação válida é gravada sem alterar o texto",
			request: func() *domain.CreateTransactionRequest {
				r := validTransactionRequest()
				r.Description = "Padaria & Café"
				r.Tags = "=SUM(A1:A2)"
				return r
			},
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().
					CreateTransaction(gomock.Any(), "2024-05", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, tr *domain.Transaction) (*domain.Transaction, error) {
						tr.ID = "b6a3f1e2-0000-4000-8000-000000000001"
						return tr, nil
					})
			},
			validate: func(t *testing.T, transaction *domain.Transaction, err error) {
				require.NoError(t, err)
				assert.Equal(t, "b6a3f1e2-0000-4000-8000-000000000001", transaction.ID)
				assert.Equal(t, "Padaria & Café", transaction.Description)
				assert.Equal(t, "=SUM(A1:A2)", transaction.Tags)
				assert.Equal(t, 150.75, transaction.Amount)
				assert.False(t, transaction.IsRecurring)
			},
		},
		{
			name:    "erro do repositório é propagado",
			request: validTransactionRequest,
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().CreateTransaction(gomock.Any(), "2024-05", gomock.Any()).Return(nil, repository.ErrMonthNotFound)
			},
			validate: func(t *testing.T, transaction *domain.Transaction, err error) {
				assert.True(t, repository.IsNotFound(err))
				assert.False(t, errors.Is(err, ErrValidation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockRecordStore(ctrl)
			tt.setup(store)

			transaction, err := NewService(store).CreateTransaction(context.Background(), "2024-05", tt.request())
			tt.validate(t, transaction, err)
		})
	}
}

func TestService_UpdateTransaction(t *testing.T) {
	t.Run("valida apenas os campos informados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		update := &domain.UpdateTransactionRequest{Amount: floatPtr(99.9)}
		store.EXPECT().UpdateTransaction(gomock.Any(), "2024-05", "abc", update).
			Return(&domain.Transaction{ID: "abc", Amount: 99.9, Description: "Mercado"}, nil)

		transaction, err := NewService(store).UpdateTransaction(context.Background(), "2024-05", "abc", update)

		require.NoError(t, err)
		assert.Equal(t, 99.9, transaction.Amount)
	})

	t.Run("campo informado inválido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		paymentMethod := domain.PaymentMethod("CHEQUE")
		update := &domain.UpdateTransactionRequest{Description: stringPtr("  "), PaymentMethod: &paymentMethod}

		_, err := NewService(store).UpdateTransaction(context.Background(), "2024-05", "abc", update)

		assert.Equal(t, []string{"description", "paymentMethod"}, fieldsOf(t, err))
	})

	t.Run("transação inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		store.EXPECT().UpdateTransaction(gomock.Any(), "2024-05", "nope", gomock.Any()).Return(nil, repository.ErrTransactionNotFound)

		_, err := NewService(store).UpdateTransaction(context.Background(), "2024-05", "nope", &domain.UpdateTransactionRequest{})

		assert.True(t, errors.Is(err, repository.ErrTransactionNotFound))
	})
}

func TestService_DeleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	gomock.InOrder(
		store.EXPECT().DeleteTransaction(gomock.Any(), "2024-05", "abc").Return(nil),
		store.EXPECT().DeleteTransaction(gomock.Any(), "2024-05", "abc").Return(repository.ErrTransactionNotFound),
	)

	service := NewService(store)

	require.NoError(t, service.DeleteTransaction(context.Background(), "2024-05", "abc"))
	err := service.DeleteTransaction(context.Background(), "2024-05", "abc")
	assert.True(t, repository.IsNotFound(err))
}

func TestService_CreateInvestment(t *testing.T) {
	t.Run("valor aplicado zero é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		request := &domain.CreateInvestmentRequest{
			Date:           "2024-05-02",
			InvestmentType: domain.InvestmentTypeCDB,
			Description:    "CDB 110% CDI",
		}

		_, err := NewService(store).CreateInvestment(context.Background(), "2024-05", request)

		assert.Equal(t, []string{"amountApplied"}, fieldsOf(t, err))
	})

	t.Run("investimento válido é gravado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockRecordStore(ctrl)
		request := &domain.CreateInvestmentRequest{
			Date:           "2024-05-02",
			InvestmentType: domain.InvestmentTypeTesouro,
			Broker:         "-Corretora",
			Description:    "Tesouro Selic",
			AmountApplied:  1000,
			CurrentValue:   floatPtr(950),
		}
		store.EXPECT().CreateInvestment(gomock.Any(), "2024-05", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, i *domain.Investment) (*domain.Investment, error) {
				i.ID = "inv-1"
				return i, nil
			})

		investment, err := NewService(store).CreateInvestment(context.Background(), "2024-05", request)

		require.NoError(t, err)
		assert.Equal(t, "inv-1", investment.ID)
		assert.Equal(t, "-Corretora", investment.Broker)
		assert.Equal(t, 950.0, investment.MarketValue())
	})

	t.Run("tipo inválido na atualização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invalid := domain.InvestmentType("IMOVEL")
		_, err := NewService(mocks.NewMockRecordStore(ctrl)).
			UpdateInvestment(context.Background(), "2024-05", "inv-1", &domain.UpdateInvestmentRequest{InvestmentType: &invalid})

		assert.Equal(t, []string{"investmentType"}, fieldsOf(t, err))
	})
}

func TestService_UpdateSettings(t *testing.T) {
	tests := []struct {
		name           string
		request        *domain.UpdateSettingsRequest
		expectStore    bool
		expectFields   []string
		expectedLimits string
	}{
		{
			name:         "limites precisam ser um objeto JSON",
			request:      &domain.UpdateSettingsRequest{CategoryLimits: stringPtr(`["Lazer"]`)},
			expectFields: []string{"categoryLimits"},
		},
		{
			name:         "null não é aceito como limites",
			request:      &domain.UpdateSettingsRequest{CategoryLimits: stringPtr("null")},
			expectFields: []string{"categoryLimits"},
		},
		{
			name:         "metas negativas são rejeitadas",
			request:      &domain.UpdateSettingsRequest{MonthlyIncomeGoal: floatPtr(-1), MonthlySavingsGoal: floatPtr(-2)},
			expectFields: []string{"monthlyIncomeGoal", "monthlySavingsGoal"},
		},
		{
			name:           "limites válidos são gravados",
			request:        &domain.UpdateSettingsRequest{CategoryLimits: stringPtr(`{"Lazer":300}`)},
			expectStore:    true,
			expectedLimits: `{"Lazer":300}`,
		},
		{
			name:           "limites vazios voltam ao padrão",
			request:        &domain.UpdateSettingsRequest{CategoryLimits: stringPtr("")},
			expectStore:    true,
			expectedLimits: domain.DefaultCategoryLimits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockRecordStore(ctrl)
			if tt.expectStore {
				store.EXPECT().UpdateSettings(gomock.Any(), "2024-05", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req *domain.UpdateSettingsRequest) (*domain.Settings, error) {
						settings := &domain.Settings{CategoryLimits: domain.DefaultCategoryLimits}
						req.Apply(settings)
						return settings, nil
					})
			}

			settings, err := NewService(store).UpdateSettings(context.Background(), "2024-05", tt.request)

			if len(tt.expectFields) > 0 {
				assert.Equal(t, tt.expectFields, fieldsOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLimits, settings.CategoryLimits)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{}
	err.add("amount", msgPositive)
	err.add("date", msgRequired)

	assert.Equal(t, "validation failed: amount: deve ser maior que zero; date: campo obrigatório", err.Error())
	assert.NoError(t, (&ValidationError{}).errOrNil())
}

func TestService_TextIsStoredAsSubmitted(t *testing.T) {
	ctx := context.Background()

	store, err := repository.NewExcelStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.CreateMonth(ctx, "2024-05"))

	service := NewService(store)

	tests := []struct {
		name     string
		mutate   func(r *domain.CreateTransactionRequest)
		validate func(t *testing.T, created *domain.Transaction, err error)
	}{
		{
			name:   "texto iniciado por sinal de mais",
			mutate: func(r *domain.CreateTransactionRequest) { r.Description = "+55 recarga celular" },
		},
		{
			name:   "texto iniciado por sinal de menos",
			mutate: func(r *domain.CreateTransactionRequest) { r.Description = "-10% desconto farmácia" },
		},
		{
			name: "texto iniciado por igual e arroba",
			mutate: func(r *domain.CreateTransactionRequest) {
				r.Description = "=ifood"
				r.Category = "@Delivery"
				r.Tags = "-promo, +cupom"
			},
		},
		{
			name:   "espaços nas bordas são preservados",
			mutate: func(r *domain.CreateTransactionRequest) { r.Description = "  Feira do bairro " },
		},
		{
			name:   "comparações com menor e maior",
			mutate: func(r *domain.CreateTransactionRequest) { r.Description = "Parcela 3 < 5 & taxa > 0" },
		},
		{
			name:   "tag HTML é rejeitada sem gravar",
			mutate: func(r *domain.CreateTransactionRequest) { r.Description = "Pizza <Napoli> & cia" },
			validate: func(t *testing.T, created *domain.Transaction, err error) {
				assert.Nil(t, created)
				assert.Equal(t, []string{"description"}, fieldsOf(t, err))
			},
		},
		{
			name:   "caractere de controle é rejeitado",
			mutate: func(r *domain.CreateTransactionRequest) { r.Tags = "mercado\x00" },
			validate: func(t *testing.T, created *domain.Transaction, err error) {
				assert.Equal(t, []string{"tags"}, fieldsOf(t, err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validTransactionRequest()
			tt.mutate(request)
			submitted := *request

			created, err := service.CreateTransaction(ctx, "2024-05", request)
			if tt.validate != nil {
				tt.validate(t, created, err)
				return
			}
			require.NoError(t, err)

			transactions, err := service.ListTransactions(ctx, "2024-05")
			require.NoError(t, err)

			var found []*domain.Transaction
			for _, tr := range transactions {
				if tr.ID == created.ID {
					found = append(found, tr)
				}
			}
			require.Len(t, found, 1)
			assert.Equal(t, submitted.Description, found[0].Description)
			assert.Equal(t, submitted.Category, found[0].Category)
			assert.Equal(t, submitted.Tags, found[0].Tags)
			assert.Equal(t, submitted.Amount, found[0].Amount)
		})
	}

	transactions, err := service.ListTransactions(ctx, "2024-05")
	require.NoError(t, err)
	assert.Len(t, transactions, 5)
}
