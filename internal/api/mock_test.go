package api

import (
	"context"

	"rateboard/internal/service"
)

// mockBoardService implements service.BoardServiceInterface for testing.
type mockBoardService struct {
	renderPageFunc func(ctx context.Context, opts service.RenderOptions) ([]byte, service.Outcome, error)
	boardFunc      func(ctx context.Context) service.Board
	checkPageFunc  func() error
}

func (m *mockBoardService) RenderPage(ctx context.Context, opts service.RenderOptions) ([]byte, service.Outcome, error) {
	return m.renderPageFunc(ctx, opts)
}

func (m *mockBoardService) Board(ctx context.Context) service.Board {
	return m.boardFunc(ctx)
}

func (m *mockBoardService) CheckPage() error {
	return m.checkPageFunc()
}
