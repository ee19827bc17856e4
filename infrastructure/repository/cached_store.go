package repository

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vfg2006/econoapp-api/internal/domain"
)

const (
	transactionsCachePrefix = "transactions:"
	investmentsCachePrefix  = "investments:"
)

// CachedStore mantém em memória as listas de transações e investimentos de cada mês.
// Toda escrita em um mês invalida as entradas daquele mês.
// Uma leitura só preenche o cache se nenhuma escrita no mês terminou enquanto ela lia.
type CachedStore struct {
	RecordStore
	cache *cache.Cache

	mu       sync.Mutex
	versions map[string]uint64
}

func NewCachedStore(store RecordStore, ttl time.Duration) *CachedStore {
	return &CachedStore{
		RecordStore: store,
		cache:       cache.New(ttl, 2*ttl),
		versions:    make(map[string]uint64),
	}
}

func (s *CachedStore) version(month string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[month]
}

func (s *CachedStore) invalidate(month string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions[month]++
	s.cache.Delete(transactionsCachePrefix + month)
	s.cache.Delete(investmentsCachePrefix + month)
}

// fill grava value apenas se nenhuma escrita no mês aconteceu desde since
func (s *CachedStore) fill(month, key string, value interface{}, since uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.versions[month] == since {
		s.cache.Set(key, value, cache.DefaultExpiration)
	}
}

func (s *CachedStore) ListTransactions(ctx context.Context, month string) ([]*domain.Transaction, error) {
	key := transactionsCachePrefix + month
	if cached, found := s.cache.Get(key); found {
		return cached.([]*domain.Transaction), nil
	}

	since := s.version(month)
	transactions, err := s.RecordStore.ListTransactions(ctx, month)
	if err != nil {
		return nil, err
	}

	s.fill(month, key, transactions, since)
	return transactions, nil
}

func (s *CachedStore) ListInvestments(ctx context.Context, month string) ([]*domain.Investment, error) {
	key := investmentsCachePrefix + month
	if cached, found := s.cache.Get(key); found {
		return cached.([]*domain.Investment), nil
	}

	since := s.version(month)
	investments, err := s.RecordStore.ListInvestments(ctx, month)
	if err != nil {
		return nil, err
	}

	s.fill(month, key, investments, since)
	return investments, nil
}

func (s *CachedStore) CreateMonth(ctx context.Context, month string) error {
	defer s.invalidate(month)
	return s.RecordStore.CreateMonth(ctx, month)
}

func (s *CachedStore) CreateTransaction(ctx context.Context, month string, transaction *domain.Transaction) (*domain.Transaction, error) {
	defer s.invalidate(month)
	return s.RecordStore.CreateTransaction(ctx, month, transaction)
}

func (s *CachedStore) UpdateTransaction(ctx context.Context, month string, id string, update *domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	defer s.invalidate(month)
	return s.RecordStore.UpdateTransaction(ctx, month, id, update)
}

func (s *CachedStore) DeleteTransaction(ctx context.Context, month string, id string) error {
	defer s.invalidate(month)
	return s.RecordStore.DeleteTransaction(ctx, month, id)
}

func (s *CachedStore) CreateInvestment(ctx context.Context, month string, investment *domain.Investment) (*domain.Investment, error) {
	defer s.invalidate(month)
	return s.RecordStore.CreateInvestment(ctx, month, investment)
}

func (s *CachedStore) UpdateInvestment(ctx context.Context, month string, id string, update *domain.UpdateInvestmentRequest) (*domain.Investment, error) {
	defer s.invalidate(month)
	return s.RecordStore.UpdateInvestment(ctx, month, id, update)
}

func (s *CachedStore) DeleteInvestment(ctx context.Context, month string, id string) error {
	defer s.invalidate(month)
	return s.RecordStore.DeleteInvestment(ctx, month, id)
}
