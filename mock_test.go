package lectern

import (
	"context"

	"github.com/lectern-io/lectern/internal/domain"
	healthuc "github.com/lectern-io/lectern/internal/usecase/health"
	ingestuc "github.com/lectern-io/lectern/internal/usecase/ingest"
)

type mockIngestUseCase struct {
	ingestFn func(ctx context.Context, in ingestuc.Input) (ingestuc.Result, error)
}

func (m *mockIngestUseCase) Ingest(ctx context.Context, in ingestuc.Input) (ingestuc.Result, error) {
	return m.ingestFn(ctx, in)
}

type mockResourceUseCase struct {
	getFn     func(ctx context.Context, id string) (domain.ResourceRecord, error)
	listFn    func(ctx context.Context) ([]domain.ResourceRecord, error)
	searchFn  func(ctx context.Context, query string) ([]domain.ResourceRecord, error)
	getFileFn func(ctx context.Context, recordID string) (domain.Blob, error)
	deleteFn  func(ctx context.Context, recordID string) error
}

func (m *mockResourceUseCase) Get(ctx context.Context, id string) (domain.ResourceRecord, error) {
	return m.getFn(ctx, id)
}

func (m *mockResourceUseCase) List(ctx context.Context) ([]domain.ResourceRecord, error) {
	return m.listFn(ctx)
}

func (m *mockResourceUseCase) Search(ctx context.Context, query string) ([]domain.ResourceRecord, error) {
	return m.searchFn(ctx, query)
}

func (m *mockResourceUseCase) GetFile(ctx context.Context, recordID string) (domain.Blob, error) {
	return m.getFileFn(ctx, recordID)
}

func (m *mockResourceUseCase) Delete(ctx context.Context, recordID string) error {
	return m.deleteFn(ctx, recordID)
}

type mockHealthUseCase struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUseCase) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

func newTestClient(ing *mockIngestUseCase, res *mockResourceUseCase, hc *mockHealthUseCase) *Client {
	obs, _ := newObserver(nil, nil)
	return &Client{
		ingestSvc:   ing,
		resourceSvc: res,
		healthSvc:   hc,
		obs:         obs,
	}
}
