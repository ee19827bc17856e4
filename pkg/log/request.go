package log

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type contextKey struct{}

// requestScope acompanha uma requisição do início ao fim. Campos anexados
// depois do roteamento, como o mês da rota, aparecem também na linha de conclusão.
type requestScope struct {
	correlationID string

	mu     sync.Mutex
	fields Fields
}

// NewRequestContext abre o escopo de log de uma requisição com um novo id de correlação
func NewRequestContext(ctx context.Context) (context.Context, string) {
	scope := &requestScope{
		correlationID: uuid.NewString(),
		fields:        Fields{},
	}
	return context.WithValue(ctx, contextKey{}, scope), scope.correlationID
}

func scopeFrom(ctx context.Context) *requestScope {
	if ctx == nil {
		return nil
	}
	scope, _ := ctx.Value(contextKey{}).(*requestScope)
	return scope
}

// GetCorrelationID obtém o id de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if scope := scopeFrom(ctx); scope != nil {
		return scope.correlationID
	}
	return ""
}

// AddField anexa um campo às próximas linhas de log da requisição.
// Fora de uma requisição não faz nada.
func AddField(ctx context.Context, key string, value interface{}) {
	scope := scopeFrom(ctx)
	if scope == nil {
		return
	}

	scope.mu.Lock()
	defer scope.mu.Unlock()
	scope.fields[key] = value
}

func (s *requestScope) snapshot() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := make(Fields, len(s.fields)+1)
	for k, v := range s.fields {
		fields[k] = v
	}
	fields[correlationIDField] = s.correlationID
	return fields
}

// ForContext cria um logger com o id de correlação e os campos da requisição
func ForContext(ctx context.Context) Logger {
	scope := scopeFrom(ctx)
	if scope == nil {
		return L
	}
	return L.WithFields(scope.snapshot())
}
