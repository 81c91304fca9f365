package dashboard

import "context"

type ServiceInterface interface {
	GetCounts(ctx context.Context, date, testType string) (*DashboardResponse, error)
}

var _ ServiceInterface = (*Service)(nil)
