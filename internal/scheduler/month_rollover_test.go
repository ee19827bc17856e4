package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/econoapp-api/infrastructure/repository/mocks"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"go.uber.org/mock/gomock"
)

func TestMonthRolloverService_rollover(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(store *mocks.MockRecordStore)
		validate func(t *testing.T, err error, status map[string]any)
	}{
		{
			name: "cria o mês novo na virada",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().MonthExists(gomock.Any(), "2025-01").Return(false, nil)
				store.EXPECT().CreateMonth(gomock.Any(), "2025-01").Return(nil)
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				assert.NoError(t, err)
				assert.Equal(t, "2025-01", status["last_month"])
				assert.Equal(t, "", status["last_error"])
			},
		},
		{
			name: "registra o erro no status",
			setup: func(store *mocks.MockRecordStore) {
				store.EXPECT().MonthExists(gomock.Any(), "2025-01").Return(false, nil)
				store.EXPECT().CreateMonth(gomock.Any(), "2025-01").Return(errors.New("disco cheio"))
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				assert.Error(t, err)
				assert.Contains(t, status["last_error"], "disco cheio")
				assert.Equal(t, false, status["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockRecordStore(ctrl)
			tt.setup(store)

			resolver := month.NewService(store, summarizing.NewService(store)).
				WithClock(fixedClock(2025, time.January, 1))

			service := &MonthRolloverService{
				resolver: resolver,
				config:   MonthRolloverConfig{CronSchedule: "5 0 1 * *", SyncEnabled: true},
			}

			err := service.rollover(context.Background())
			tt.validate(t, err, service.GetStatus())
		})
	}
}
