package handler

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
	"github.com/vfg2006/econoapp-api/pkg/apiErrors"
	"github.com/vfg2006/econoapp-api/pkg/log"
	"github.com/vfg2006/econoapp-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody lê o corpo JSON. Em caso de falha a resposta de erro já foi escrita:
// campos com tipo errado viram VAL_001 com detalhes, o resto é VAL_003.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err == nil {
		err = json.Unmarshal(body, dst)
	}
	if err == nil {
		return true
	}

	logger := log.ForContext(r.Context()).WithError(err)

	if details := fieldTypeErrors(body, dst); len(details) > 0 {
		logger.Warn("Campos com tipo inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", details)
		return false
	}

	logger.Warn("Corpo da requisição inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
	return false
}

// fieldTypeErrors aponta, na ordem da struct, os campos do corpo cujo valor
// não cabe no tipo do campo de dst. Corpo que não é um objeto JSON não gera detalhes.
func fieldTypeErrors(body []byte, dst any) []recording.FieldError {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var details []recording.FieldError
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		value, ok := raw[name]
		if name == "" || name == "-" || !ok {
			continue
		}

		if err := json.Unmarshal(value, reflect.New(field.Type).Interface()); err != nil {
			details = append(details, recording.FieldError{Field: name, Message: expectedType(field.Type)})
		}
	}
	return details
}

func expectedType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "deve ser um texto"
	case reflect.Bool:
		return "deve ser verdadeiro ou falso"
	case reflect.Int, reflect.Int64, reflect.Float32, reflect.Float64:
		return "deve ser um número"
	}
	return "tipo inválido"
}

// monthParam valida o parâmetro :month no formato yyyy-mm
func monthParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	month := httprouter.ParamsFromContext(r.Context()).ByName("month")
	if !utils.IsValidMonth(month) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use o formato yyyy-mm", map[string]string{"month": month})
		return "", false
	}
	return month, true
}

func idParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// writeServiceError traduz o erro dos serviços para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var validationErr *recording.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", validationErr.Details)
		return
	}

	logger.Error(message)

	switch {
	case errors.Is(err, repository.ErrMonthNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMonthNotFound, "Mês não encontrado", nil)
	case errors.Is(err, repository.ErrTransactionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTransactionNotFound, "Transação não encontrada", nil)
	case errors.Is(err, repository.ErrInvestmentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvestmentNotFound, "Investimento não encontrado", nil)
	case errors.Is(err, repository.ErrSheetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Planilha do mês incompleta", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
