package queries_test

import (
	"context"
	"testing"
	"time"

	"flavorverse/internal/adapters/out/postgres/orderrepo"
	"flavorverse/internal/core/application/usecases/queries"
	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/domain/services"
	"flavorverse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UserOrderQueriesTestSuite runs both query handlers against an in-memory
// SQLite database through the GORM repository.
type UserOrderQueriesTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	lifecycle services.OrderLifecycle
	now       time.Time
}

func TestUserOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(UserOrderQueriesTestSuite))
}

func (suite *UserOrderQueriesTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	suite.Require().NoError(err)
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(orderrepo.Migrate(db))

	suite.db = db
	suite.repo = orderrepo.NewGormOrderRepository(db)
	suite.now = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	suite.lifecycle = services.NewOrderLifecycle(func() time.Time {
		suite.now = suite.now.Add(time.Minute)
		return suite.now
	})
}

func (suite *UserOrderQueriesTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *UserOrderQueriesTestSuite) place(ownerID string) *order.Order {
	placed, err := suite.lifecycle.Place(order.Draft{
		OwnerID:        ownerID,
		RestaurantID:   "r1",
		RestaurantName: "Bistro",
		LineItems: []order.LineItem{
			{ItemID: "i1", Name: "Soup", UnitPrice: kernel.MustNewMoney("4.20"), Quantity: 1},
		},
		Total: kernel.MustNewMoney("4.20"),
		Address: order.DeliveryAddress{
			FullName: "A", Phone: "555", AddressLine1: "1 St", City: "X", State: "Y", ZipCode: "0",
		},
		Payment: order.PaymentInfo{Method: order.PaymentCard},
	})
	suite.Require().NoError(err)

	stored, err := suite.repo.Create(context.Background(), placed)
	suite.Require().NoError(err)
	return stored
}

func (suite *UserOrderQueriesTestSuite) TestListUserOrders_ReturnsOwnOrdersNewestFirst() {
	first := suite.place("u1")
	suite.place("u2")
	last := suite.place("u1")

	query, err := queries.NewListUserOrdersQuery("u1")
	suite.Require().NoError(err)

	orders, err := queries.NewListUserOrdersQueryHandler(suite.repo).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(last.ID()))
	suite.True(orders[1].ID().IsEqual(first.ID()))
}

func (suite *UserOrderQueriesTestSuite) TestListUserOrders_EmptyForUnknownOwner() {
	suite.place("u1")
	query, _ := queries.NewListUserOrdersQuery("u9")

	orders, err := queries.NewListUserOrdersQueryHandler(suite.repo).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *UserOrderQueriesTestSuite) TestGetUserOrder_ReturnsOwnOrder() {
	stored := suite.place("u1")
	query, err := queries.NewGetUserOrderQuery(stored.ID().String(), "u1")
	suite.Require().NoError(err)

	fetched, err := queries.NewGetUserOrderQueryHandler(suite.repo).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(fetched.ID().IsEqual(stored.ID()))
	suite.Equal(order.Confirmed, fetched.Status())
}

func (suite *UserOrderQueriesTestSuite) TestGetUserOrder_ForeignOrderIsNotFound() {
	stored := suite.place("u1")
	query, _ := queries.NewGetUserOrderQuery(stored.ID().String(), "u2")

	_, err := queries.NewGetUserOrderQueryHandler(suite.repo).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// ownerBlindRepository answers GetForOwner with owner's orders whoever asks.
type ownerBlindRepository struct {
	*orderrepo.GormOrderRepository
	owner string
}

func (r ownerBlindRepository) GetForOwner(ctx context.Context, id kernel.UUID, _ string) (*order.Order, error) {
	return r.GormOrderRepository.GetForOwner(ctx, id, r.owner)
}

func (suite *UserOrderQueriesTestSuite) TestGetUserOrder_ChecksOwnerOfFetchedOrder() {
	stored := suite.place("u1")
	query, _ := queries.NewGetUserOrderQuery(stored.ID().String(), "u2")
	repo := ownerBlindRepository{GormOrderRepository: suite.repo, owner: "u1"}

	fetched, err := queries.NewGetUserOrderQueryHandler(repo).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(fetched)
}

func TestNewListUserOrdersQuery(t *testing.T) {
	_, err := queries.NewListUserOrdersQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.ListUserOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrListUserOrdersQueryIsNotConstructed)
}

func TestNewGetUserOrderQuery(t *testing.T) {
	t.Run("should parse the order id", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetUserOrderQuery(id.String(), "u1")

		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(id))
		assert.Equal(t, "u1", query.OwnerID())
	})

	t.Run("should report a malformed id as not found", func(t *testing.T) {
		_, err := queries.NewGetUserOrderQuery("42", "u1")

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "42", notFound.ID)
	})

	t.Run("should require an owner", func(t *testing.T) {
		_, err := queries.NewGetUserOrderQuery(kernel.NewUUID().String(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is rejected by the handler", func(t *testing.T) {
		h := queries.NewGetUserOrderQueryHandler(nil)

		_, err := h.Handle(t.Context(), queries.GetUserOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetUserOrderQueryIsNotConstructed)
	})
}
