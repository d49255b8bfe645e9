package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nearfix/internal/pkg/models"
	catalogmocks "github.com/piresc/nearfix/services/catalog/mocks"
	matchmocks "github.com/piresc/nearfix/services/match/mocks"
	"github.com/piresc/nearfix/services/requests"
	"github.com/piresc/nearfix/services/requests/mocks"
	usermocks "github.com/piresc/nearfix/services/users/mocks"
)

type requestMocks struct {
	cfg     *models.Config
	repo    *mocks.MockRequestRepo
	tx      *mocks.MockRequestTx
	catalog *catalogmocks.MockCatalogRepo
	users   *usermocks.MockUserRepo
	match   *matchmocks.MockMatchUC
	gw      *mocks.MockRequestGW
}

func newRequestMocks(t *testing.T) *requestMocks {
	ctrl := gomock.NewController(t)
	return &requestMocks{
		cfg:     &models.Config{},
		repo:    mocks.NewMockRequestRepo(ctrl),
		tx:      mocks.NewMockRequestTx(ctrl),
		catalog: catalogmocks.NewMockCatalogRepo(ctrl),
		users:   usermocks.NewMockUserRepo(ctrl),
		match:   matchmocks.NewMockMatchUC(ctrl),
		gw:      mocks.NewMockRequestGW(ctrl),
	}
}

func (m *requestMocks) uc() *RequestUC {
	return NewRequestUC(m.cfg, m.repo, m.catalog, m.users, m.match, m.gw)
}

// expectTx runs the transaction body against the tx mock and returns whatever it returns
func (m *requestMocks) expectTx() {
	m.repo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(requests.RequestTx) error) error {
			return fn(m.tx)
		})
}

var (
	requester = models.Actor{ID: "u-1", Role: models.RoleUser}
	helperOne = models.Actor{ID: "h-1", Role: models.RoleHelper}
	admin     = models.Actor{ID: "a-1", Role: models.RoleAdmin}
)

func strPtr(s string) *string { return &s }
