package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const monthFileExtension = ".xlsx"

// ExcelStore grava cada mês em uma planilha <dataDir>/<yyyy-mm>.xlsx
type ExcelStore struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func NewExcelStore(dataDir string) (*ExcelStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório de dados %s", dataDir)
	}

	return &ExcelStore{
		dataDir: dataDir,
		locks:   make(map[string]*sync.RWMutex),
	}, nil
}

// MonthFileName retorna o nome do arquivo em que o mês é gravado
func MonthFileName(month string) string {
	return month + monthFileExtension
}

// FilePath retorna o caminho da planilha do mês
func (s *ExcelStore) FilePath(month string) string {
	return filepath.Join(s.dataDir, MonthFileName(month))
}

// monthLock serializa leitura-modificação-escrita de um mesmo mês
func (s *ExcelStore) monthLock(month string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[month]
	if !ok {
		lock = &sync.RWMutex{}
		s.locks[month] = lock
	}
	return lock
}

func (s *ExcelStore) MonthExists(ctx context.Context, month string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(s.FilePath(month))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "erro ao verificar planilha de %s", month)
}

func (s *ExcelStore) ListMonths(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar planilhas")
	}

	months := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, monthFileExtension) {
			continue
		}

		month := strings.TrimSuffix(name, monthFileExtension)
		if !utils.IsValidMonth(month) {
			continue
		}
		months = append(months, month)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months, nil
}

func (s *ExcelStore) CreateMonth(ctx context.Context, month string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.monthLock(month)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(s.FilePath(month)); err == nil {
		return nil
	}

	f, err := newMonthWorkbook()
	if err != nil {
		return errors.Wrapf(err, "erro ao montar planilha de %s", month)
	}
	defer f.Close()

	if err := f.SaveAs(s.FilePath(month)); err != nil {
		return errors.Wrapf(err, "erro ao salvar planilha de %s", month)
	}

	logrus.WithField("month", month).Debug("Planilha do mês criada")
	return nil
}

// newMonthWorkbook monta o template: abas com cabeçalho, configurações padrão e categorias
func newMonthWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	for _, layout := range monthLayouts {
		if _, err := f.NewSheet(layout.name); err != nil {
			return nil, err
		}

		header := layout.header()
		if err := f.SetSheetRow(layout.name, "A1", &header); err != nil {
			return nil, err
		}

		for i, c := range layout.columns {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(layout.name, name, name, c.width); err != nil {
				return nil, err
			}
		}
	}

	for i, row := range settingsRows(&domain.Settings{}) {
		if err := setRow(f, sheetSettings, i+2, row); err != nil {
			return nil, err
		}
	}

	for i, category := range domain.DefaultCategories {
		if err := setRow(f, sheetCategories, i+2, []interface{}{category.Category, string(category.Type)}); err != nil {
			return nil, err
		}
	}

	// NewFile sempre cria a aba padrão Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if index, err := f.GetSheetIndex(sheetTransactions); err == nil {
		f.SetActiveSheet(index)
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, rowNumber int, values []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, ref, &values)
}

// openMonth abre a planilha do mês. O chamador precisa fechar o arquivo.
func (s *ExcelStore) openMonth(month string) (*excelize.File, error) {
	f, err := excelize.OpenFile(s.FilePath(month))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMonthNotFound, "mês %s", month)
		}
		return nil, errors.Wrapf(err, "erro ao abrir planilha de %s", month)
	}
	return f, nil
}

// dataRows devolve as linhas após o cabeçalho com o número da linha na planilha.
// Linhas sem id são ignoradas.
func dataRows(f *excelize.File, sheet string) ([]int, [][]string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	numbers := make([]int, 0, len(rows))
	values := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || cell(row, 0) == "" {
			continue
		}
		numbers = append(numbers, i+1)
		values = append(values, row)
	}
	return numbers, values, nil
}

func hasSheet(f *excelize.File, sheet string) bool {
	index, err := f.GetSheetIndex(sheet)
	return err == nil && index >= 0
}

// readSheet lê as linhas de dados de uma aba. Aba ausente resulta em lista vazia.
func (s *ExcelStore) readSheet(ctx context.Context, month, sheet string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock := s.monthLock(month)
	lock.RLock()
	defer lock.RUnlock()

	f, err := s.openMonth(month)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !hasSheet(f, sheet) {
		return [][]string{}, nil
	}

	_, rows, err := dataRows(f, sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s de %s", sheet, month)
	}
	return rows, nil
}

// modifySheet abre o mês com trava exclusiva, aplica fn sobre a aba e salva o arquivo
func (s *ExcelStore) modifySheet(ctx context.Context, month, sheet string, fn func(f *excelize.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.monthLock(month)
	lock.Lock()
	defer lock.Unlock()

	f, err := s.openMonth(month)
	if err != nil {
		return err
	}
	defer f.Close()

	if !hasSheet(f, sheet) {
		return errors.Wrapf(ErrSheetNotFound, "aba %s de %s", sheet, month)
	}

	if err := fn(f); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return errors.Wrapf(err, "erro ao salvar planilha de %s", month)
	}
	return nil
}

// findRow localiza a linha cujo id (coluna A) é igual a id
func findRow(f *excelize.File, sheet, id string) (int, []string, error) {
	numbers, rows, err := dataRows(f, sheet)
	if err != nil {
		return 0, nil, err
	}

	for i, row := range rows {
		if cell(row, 0) == id {
			return numbers[i], row, nil
		}
	}
	return 0, nil, nil
}

// appendRow grava values na primeira linha após a última linha usada
func appendRow(f *excelize.File, sheet string, values []interface{}) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	return setRow(f, sheet, len(rows)+1, values)
}

func (s *ExcelStore) ListTransactions(ctx context.Context, month string) ([]*domain.Transaction, error) {
	rows, err := s.readSheet(ctx, month, sheetTransactions)
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}
	return transactions, nil
}

func (s *ExcelStore) CreateTransaction(ctx context.Context, month string, transaction *domain.Transaction) (*domain.Transaction, error) {
	created := *transaction
	created.ID = utils.NewRecordID()

	err := s.modifySheet(ctx, month, sheetTransactions, func(f *excelize.File) error {
		return appendRow(f, sheetTransactions, transactionToRow(&created))
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *ExcelStore) UpdateTransaction(ctx context.Context, month string, id string, update *domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	var updated *domain.Transaction

	err := s.modifySheet(ctx, month, sheetTransactions, func(f *excelize.File) error {
		rowNumber, row, err := findRow(f, sheetTransactions, id)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.Wrapf(ErrTransactionNotFound, "transação %s", id)
		}

		updated = rowToTransaction(row)
		update.Apply(updated)
		updated.ID = id

		return setRow(f, sheetTransactions, rowNumber, transactionToRow(updated))
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *ExcelStore) DeleteTransaction(ctx context.Context, month string, id string) error {
	return s.modifySheet(ctx, month, sheetTransactions, func(f *excelize.File) error {
		rowNumber, row, err := findRow(f, sheetTransactions, id)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.Wrapf(ErrTransactionNotFound, "transação %s", id)
		}
		return f.RemoveRow(sheetTransactions, rowNumber)
	})
}

func (s *ExcelStore) ListInvestments(ctx context.Context, month string) ([]*domain.Investment, error) {
	rows, err := s.readSheet(ctx, month, sheetInvestments)
	if err != nil {
		return nil, err
	}

	investments := make([]*domain.Investment, 0, len(rows))
	for _, row := range rows {
		investments = append(investments, rowToInvestment(row))
	}
	return investments, nil
}

func (s *ExcelStore) CreateInvestment(ctx context.Context, month string, investment *domain.Investment) (*domain.Investment, error) {
	created := *investment
	created.ID = utils.NewRecordID()

	err := s.modifySheet(ctx, month, sheetInvestments, func(f *excelize.File) error {
		return appendRow(f, sheetInvestments, investmentToRow(&created))
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *ExcelStore) UpdateInvestment(ctx context.Context, month string, id string, update *domain.UpdateInvestmentRequest) (*domain.Investment, error) {
	var updated *domain.Investment

	err := s.modifySheet(ctx, month, sheetInvestments, func(f *excelize.File) error {
		rowNumber, row, err := findRow(f, sheetInvestments, id)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.Wrapf(ErrInvestmentNotFound, "investimento %s", id)
		}

		updated = rowToInvestment(row)
		update.Apply(updated)
		updated.ID = id

		return setRow(f, sheetInvestments, rowNumber, investmentToRow(updated))
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *ExcelStore) DeleteInvestment(ctx context.Context, month string, id string) error {
	return s.modifySheet(ctx, month, sheetInvestments, func(f *excelize.File) error {
		rowNumber, row, err := findRow(f, sheetInvestments, id)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.Wrapf(ErrInvestmentNotFound, "investimento %s", id)
		}
		return f.RemoveRow(sheetInvestments, rowNumber)
	})
}

// GetSettings lê as configurações. A aba Settings usa a coluna de chave como id.
func (s *ExcelStore) GetSettings(ctx context.Context, month string) (*domain.Settings, error) {
	rows, err := s.readSheet(ctx, month, sheetSettings)
	if err != nil {
		return nil, err
	}
	return rowsToSettings(rows), nil
}

func (s *ExcelStore) UpdateSettings(ctx context.Context, month string, update *domain.UpdateSettingsRequest) (*domain.Settings, error) {
	var settings *domain.Settings

	err := s.modifySheet(ctx, month, sheetSettings, func(f *excelize.File) error {
		_, rows, err := dataRows(f, sheetSettings)
		if err != nil {
			return err
		}

		settings = rowsToSettings(rows)
		update.Apply(settings)

		for _, row := range settingsRows(settings) {
			key := row[0].(string)

			rowNumber, existing, err := findRow(f, sheetSettings, key)
			if err != nil {
				return err
			}

			if existing == nil {
				err = appendRow(f, sheetSettings, row)
			} else {
				err = setRow(f, sheetSettings, rowNumber, row)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *ExcelStore) ListCategories(ctx context.Context, month string) ([]*domain.Category, error) {
	rows, err := s.readSheet(ctx, month, sheetCategories)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, rowToCategory(row))
	}
	return categories, nil
}
