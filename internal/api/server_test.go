package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/infrastructure/repository/mocks"
	"github.com/vfg2006/econoapp-api/internal/config"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/insighting"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{
			CORSAllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

func newTestHandler(store *mocks.MockRecordStore, snapshotRepo repository.SummarySnapshotRepository) http.Handler {
	summarizer := summarizing.NewService(store)

	return NewHandler(testConfig(), Services{
		Resolver:     month.NewService(store, summarizer),
		Summarizer:   summarizer,
		Insighter:    insighting.NewService(store, summarizer),
		Recorder:     recording.NewService(store),
		SnapshotRepo: snapshotRepo,
	})
}

func doRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := doRequest(newTestHandler(mocks.NewMockRecordStore(ctrl), nil), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMonthSummary(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(store *mocks.MockRecordStore)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "resumo do mês com receitas e despesas",
			path: "/api/months/2024-03/summary",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().ListTransactions(gomock.Any(), "2024-03").Return([]*domain.Transaction{
					{ID: "1", Type: domain.TransactionTypeIncome, Category: "Salário", Amount: 1000},
					{ID: "2", Type: domain.TransactionTypeExpense, Category: "Alimentação", Amount: 300},
					{ID: "3", Type: domain.TransactionTypeExpense, Category: "Transporte", Amount: 100},
				}, nil)
				store.EXPECT().ListInvestments(gomock.Any(), "2024-03").Return([]*domain.Investment{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				var summary domain.MonthSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
				assert.Equal(t, 1000.0, summary.TotalIncome)
				assert.Equal(t, 400.0, summary.TotalExpenses)
				assert.Equal(t, 600.0, summary.Balance)
				require.Len(t, summary.TopCategories, 2)
				assert.Equal(t, domain.CategoryTotal{Category: "Alimentação", Amount: 300, Percentage: 75}, summary.TopCategories[0])
			},
		},
		{
			name:  "mês fora do formato é rejeitado",
			path:  "/api/months/2024-13/summary",
			setup: func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name: "mês inexistente responde erro do servidor",
			path: "/api/months/2023-01/summary",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().ListTransactions(gomock.Any(), "2023-01").Return(nil, repository.ErrMonthNotFound)
				store.EXPECT().ListInvestments(gomock.Any(), "2023-01").Return(nil, repository.ErrMonthNotFound).AnyTimes()
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrMonthNotFound, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockRecordStore(ctrl)
			tt.setup(store)

			rec := doRequest(newTestHandler(store, nil), http.MethodGet, tt.path, "")
			tt.validate(t, rec)
		})
	}
}

func TestTransactions(t *testing.T) {
	validBody := `{"date":"2024-03-05","type":"EXPENSE","description":"Mercado","category":"Alimentação","amount":150.5,"paymentMethod":"PIX"}`

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(store *mocks.MockRecordStore)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "cria transação válida",
			method: http.MethodPost,
			path:   "/api/months/2024-03/transactions",
			body:   validBody,
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().CreateTransaction(gomock.Any(), "2024-03", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, tx *domain.Transaction) (*domain.Transaction, error) {
						tx.ID = "tx-1"
						return tx, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, rec.Code)

				var tx domain.Transaction
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
				assert.Equal(t, "tx-1", tx.ID)
				assert.Equal(t, 150.5, tx.Amount)
			},
		},
		{
			name:   "valor negativo é rejeitado sem gravar",
			method: http.MethodPost,
			path:   "/api/months/2024-03/transactions",
			body:   `{"date":"2024-03-05","type":"EXPENSE","description":"Mercado","category":"Alimentação","amount":-5,"paymentMethod":"PIX"}`,
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.JSONEq(t,
					`{"code":"VAL_001","message":"Dados inválidos","details":[{"field":"amount","message":"deve ser maior que zero"}]}`,
					rec.Body.String())
			},
		},
		{
			name:   "corpo malformado",
			method: http.MethodPost,
			path:   "/api/months/2024-03/transactions",
			body:   `{"amount":`,
			setup:  func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:   "campos com tipo errado recebem detalhes",
			method: http.MethodPost,
			path:   "/api/months/2024-03/transactions",
			body:   `{"date":"2024-03-05","type":"EXPENSE","description":"Mercado","category":"Alimentação","amount":"abc","paymentMethod":"PIX","isRecurring":"sim"}`,
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.JSONEq(t,
					`{"code":"VAL_001","message":"Dados inválidos","details":[`+
						`{"field":"amount","message":"deve ser um número"},`+
						`{"field":"isRecurring","message":"deve ser verdadeiro ou falso"}]}`,
					rec.Body.String())
			},
		},
		{
			name:   "tipo errado na atualização parcial",
			method: http.MethodPut,
			path:   "/api/months/2024-03/transactions/tx-1",
			body:   `{"amount":"abc"}`,
			setup:  func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.NotEmpty(t, apiErr.Details)
			},
		},
		{
			name:   "corpo acima do limite",
			method: http.MethodPost,
			path:   "/api/months/2024-03/transactions",
			body:   `{"description":"` + strings.Repeat("a", 1<<20) + `"}`,
			setup:  func(store *mocks.MockRecordStore) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:   "atualização parcial",
			method: http.MethodPut,
			path:   "/api/months/2024-03/transactions/tx-1",
			body:   `{"amount":99.9}`,
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().UpdateTransaction(gomock.Any(), "2024-03", "tx-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, _ string, update *domain.UpdateTransactionRequest) (*domain.Transaction, error) {
						assert.Nil(t, update.Description)
						return &domain.Transaction{ID: "tx-1", Amount: *update.Amount}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "exclusão responde sem conteúdo",
			method: http.MethodDelete,
			path:   "/api/months/2024-03/transactions/tx-1",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().DeleteTransaction(gomock.Any(), "2024-03", "tx-1").Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Empty(t, rec.Body.String())
			},
		},
		{
			name:   "exclusão de transação inexistente",
			method: http.MethodDelete,
			path:   "/api/months/2024-03/transactions/tx-404",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().DeleteTransaction(gomock.Any(), "2024-03", "tx-404").Return(repository.ErrTransactionNotFound)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrTransactionNotFound, decodeError(t, rec).Code)
			},
		},
		{
			name:   "falha de leitura da planilha",
			method: http.MethodGet,
			path:   "/api/months/2024-03/transactions",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().ListTransactions(gomock.Any(), "2024-03").Return(nil, errors.New("zip: not a valid zip file"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockRecordStore(ctrl)
			tt.setup(store)

			rec := doRequest(newTestHandler(store, nil), tt.method, tt.path, tt.body)
			tt.validate(t, rec)
		})
	}
}

func TestEnsureCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().MonthExists(gomock.Any(), gomock.Any()).Return(false, nil)
	store.EXPECT().CreateMonth(gomock.Any(), gomock.Any()).Return(nil)

	handler := newTestHandler(store, nil)

	rec := doRequest(handler, http.MethodPost, "/api/months/ensure-current", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Regexp(t, `^\d{4}-\d{2}$`, body["month"])

	rec = doRequest(handler, http.MethodPost, "/api/months/ensure-previous", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().ListMonths(gomock.Any()).Return([]string{"2024-02", "2024-01"}, nil)

	rec := doRequest(newTestHandler(store, nil), http.MethodGet, "/api/months", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var months []domain.MonthInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &months))
	require.Len(t, months, 2)
	assert.Equal(t, "2024-02", months[0].Month)
	assert.Equal(t, "2024-02.xlsx", months[0].FileName)
	assert.Nil(t, months[0].Summary)

	rec = doRequest(newTestHandler(store, nil), http.MethodGet, "/api/months?withSummary=talvez", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistory(t *testing.T) {
	t.Run("desabilitado sem banco de resumos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rec := doRequest(newTestHandler(mocks.NewMockRecordStore(ctrl), nil), http.MethodGet, "/api/history", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrServiceUnavailable, decodeError(t, rec).Code)
	})

	t.Run("lista resumos arquivados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshotRepo := mocks.NewMockSummarySnapshotRepository(ctrl)
		snapshotRepo.EXPECT().List(gomock.Any()).Return([]*domain.SummarySnapshot{
			{ID: "s2", Month: "2024-02", Balance: 500},
			{ID: "s1", Month: "2024-01", Balance: 300},
		}, nil)

		rec := doRequest(newTestHandler(mocks.NewMockRecordStore(ctrl), snapshotRepo), http.MethodGet, "/api/history", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var snapshots []domain.SummarySnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshots))
		require.Len(t, snapshots, 2)
		assert.Equal(t, "2024-02", snapshots[0].Month)
	})
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newTestHandler(mocks.NewMockRecordStore(ctrl), nil)

	rec := doRequest(handler, http.MethodPost, "/api/cron/backup/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(handler, http.MethodPost, "/api/cron/snapshot/run", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(handler, http.MethodGet, "/api/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := doRequest(newTestHandler(mocks.NewMockRecordStore(ctrl), nil), http.MethodGet, "/api/budgets", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)
}
