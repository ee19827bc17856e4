package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelevantField(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{key: correlationIDField, expected: true},
		{key: "month", expected: true},
		{key: "sync_running", expected: true},
		{key: "user_agent", expected: false},
		{key: "remote_addr", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRelevantField(tt.key))
		})
	}
}

func TestWithFields(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		fields      Fields
		expected    logrus.Fields
	}{
		{
			name:        "produção mantém todos os campos",
			development: false,
			fields:      Fields{"month": "2024-05", "user_agent": "curl"},
			expected:    logrus.Fields{"month": "2024-05", "user_agent": "curl"},
		},
		{
			name:        "desenvolvimento descarta campos de rastreio",
			development: true,
			fields:      Fields{"month": "2024-05", "user_agent": "curl"},
			expected:    logrus.Fields{"month": "2024-05"},
		},
		{
			name:        "desenvolvimento sem campos relevantes",
			development: true,
			fields:      Fields{"referer": "x"},
			expected:    logrus.Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()
			SetDevelopment(tt.development)
			defer SetDevelopment(false)

			L.WithFields(tt.fields).Info("linha")

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expected, entry.Data)
		})
	}
}

func TestRequestScope(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	assert.Empty(t, GetCorrelationID(context.Background()))
	AddField(context.Background(), "month", "2024-05")
	assert.Equal(t, L, ForContext(context.Background()))

	ctx, id := NewRequestContext(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	// Campos anexados depois valem para o mesmo escopo, inclusive em contextos derivados
	derived, cancel := context.WithCancel(ctx)
	defer cancel()
	AddField(derived, "month", "2024-05")

	ForContext(ctx).Warn("linha")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.Fields{correlationIDField: id, "month": "2024-05"}, entry.Data)
}
