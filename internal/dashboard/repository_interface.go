package dashboard

import "context"

type RepositoryInterface interface {
	CountAdmissions(ctx context.Context, date string) (int, error)
	CountVisits(ctx context.Context, date string) (int, error)
	CountTests(ctx context.Context, date string) (int, error)
	CountTestsByType(ctx context.Context, date, testType string) (int, error)
}

var _ RepositoryInterface = (*Repository)(nil)
