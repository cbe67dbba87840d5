package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/service"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// handlerFixture wires the handlers to mock repositories
type handlerFixture struct {
	e         *echo.Echo
	repo      *testutil.MockDatasetRepository
	objects   *testutil.MockObjectRepository
	publisher *testutil.MockPublisher
	datasets  *service.DatasetService
	dataset   *DatasetHandler
	dashboard *DashboardHandler
	export    *ExportHandler
	sessionID uuid.UUID
}

func newHandlerFixture(withStorage bool) *handlerFixture {
	f := &handlerFixture{
		e:         echo.New(),
		repo:      testutil.NewMockDatasetRepository(),
		publisher: &testutil.MockPublisher{},
		sessionID: uuid.New(),
	}
	if withStorage {
		f.objects = testutil.NewMockObjectRepository()
		f.datasets = service.NewDatasetService(f.repo, f.objects, 1024)
	} else {
		f.datasets = service.NewDatasetService(f.repo, nil, 1024)
	}
	f.datasets.SetEventPublisher(f.publisher)

	dashboardService := service.NewDashboardService(f.repo, "$", domain.DefaultRollingWindow)
	f.dataset = NewDatasetHandler(f.datasets)
	f.dashboard = NewDashboardHandler(dashboardService)
	f.export = NewExportHandler(service.NewExportService(dashboardService))
	return f
}

// loadSample stores the bundled sample as the fixture session's dataset
func (f *handlerFixture) loadSample() {
	f.repo.AddDataset(&domain.Dataset{
		SessionID: f.sessionID,
		Source:    domain.DatasetSourceSample,
		Filename:  service.SampleFilename,
		Table:     service.SampleTable(),
	})
}

// newContext builds an echo context carrying the fixture session
func (f *handlerFixture) newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	setupSessionContext(c, f.sessionID)
	return c, rec
}

func setupSessionContext(c echo.Context, sessionID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), middleware.SessionIDKey, sessionID)
	c.SetRequest(c.Request().WithContext(ctx))
}
