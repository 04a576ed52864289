package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/pgtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var base = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	uow       ports.UnitOfWork
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.uow = postgres_adapter.NewGormUnitOfWorkFactory(suite.db).Create()
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestTopSelling_CountsDeliveredOrdersOnly() {
	ctx := context.Background()
	a := suite.addItem("Paneer Tikka", catalog.Appetizer, "100.00", true)
	b := suite.addItem("Mango Lassi", catalog.Beverage, "50.00", true)

	first := suite.addOrder(1, order.Delivered, line(a, 2, "100.00"), line(b, 1, "50.00"))
	suite.addOrder(2, order.Delivered, line(a, 2, "100.00"), line(b, 1, "50.00"))
	suite.addOrder(3, order.Pending, line(a, 5, "100.00"))
	suite.addOrder(4, order.Cancelled, line(b, 9, "50.00"))

	report := suite.topSelling(ctx, 5)

	suite.Require().Len(report, 2)
	suite.True(a.ID().IsEqual(report[0].ItemID))
	suite.Equal("Paneer Tikka", report[0].Name)
	suite.Equal(4, report[0].Quantity)
	suite.Equal("400.00", report[0].Revenue.String())
	suite.Equal(2, report[0].OrderCount)
	suite.True(b.ID().IsEqual(report[1].ItemID))
	suite.Equal(2, report[1].Quantity)
	suite.Equal("100.00", report[1].Revenue.String())

	suite.Require().NoError(first.ChangeStatus(order.Cancelled, order.PermissivePolicy, base.Add(time.Hour)))
	suite.Require().NoError(suite.uow.OrderRepository().Update(ctx, first))

	report = suite.topSelling(ctx, 5)
	suite.Require().Len(report, 2)
	suite.Equal(2, report[0].Quantity)
	suite.Equal("200.00", report[0].Revenue.String())
	suite.Equal(1, report[0].OrderCount)
}

func (suite *QueriesIntegrationTestSuite) TestTopSelling_BreaksTiesByItemIDAndAppliesLimit() {
	ctx := context.Background()
	x := suite.addItem("Samosa", catalog.Appetizer, "20.00", true)
	y := suite.addItem("Kachori", catalog.Appetizer, "25.00", true)
	z := suite.addItem("Jalebi", catalog.Dessert, "40.00", true)

	suite.addOrder(1, order.Delivered, line(x, 3, "20.00"), line(z, 1, "40.00"))
	suite.addOrder(2, order.Delivered, line(y, 3, "25.00"))

	report := suite.topSelling(ctx, 2)

	suite.Require().Len(report, 2)
	first, second := x, y
	if y.ID().Compare(x.ID()) < 0 {
		first, second = y, x
	}
	suite.True(first.ID().IsEqual(report[0].ItemID))
	suite.True(second.ID().IsEqual(report[1].ItemID))
	suite.Equal(3, report[0].Quantity)
	suite.Equal(3, report[1].Quantity)
}

func (suite *QueriesIntegrationTestSuite) TestTopSelling_UsesFrozenPricesAndPlaceholder() {
	ctx := context.Background()
	a := suite.addItem("Veg Biryani", catalog.MainCourse, "180.00", true)
	gone := kernel.NewUUID()

	suite.addOrder(1, order.Delivered, line(a, 1, "150.00"))
	suite.addOrder(2, order.Delivered, orderLine{id: gone, quantity: 3, price: "20.00"})

	report := suite.topSelling(ctx, 1)
	suite.Require().Len(report, 1)
	suite.True(gone.IsEqual(report[0].ItemID))
	suite.Equal(services.MissingItemName, report[0].Name)
	suite.True(report[0].Missing)
	suite.Equal("60.00", report[0].Revenue.String())

	report = suite.topSelling(ctx, 5)
	suite.Require().Len(report, 2)
	suite.Equal("150.00", report[1].Revenue.String(), "revenue uses the price frozen on the line")
	suite.Equal("180.00", report[1].Price.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	a := suite.addItem("Masala Chai", catalog.Beverage, "30.00", true)
	gone := kernel.NewUUID()
	created := suite.addOrder(12, order.Ready, line(a, 2, "30.00"), orderLine{id: gone, quantity: 1, price: "45.50"})

	query, err := queries.NewGetOrderQuery(created.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("ORD-20240315-0012", view.Number)
	suite.Equal(order.Ready, view.Status)
	suite.Equal("105.50", view.Total.String())
	suite.Equal(3, view.ItemCount())
	suite.Require().Len(view.Lines, 2)
	suite.Equal("Masala Chai", view.Lines[0].Name)
	suite.Equal("60.00", view.Lines[0].Subtotal().String())
	suite.False(view.Lines[0].ItemMissing)
	suite.True(view.Lines[1].ItemMissing)

	query, err = queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Paginates() {
	ctx := context.Background()
	a := suite.addItem("Samosa", catalog.Appetizer, "25.00", true)
	for seq := 1; seq <= 25; seq++ {
		status := order.Pending
		if seq%5 == 0 {
			status = order.Delivered
		}
		suite.addOrder(seq, status, line(a, 1, "25.00"))
	}

	query, err := queries.NewListOrdersQuery("", 2, 10)
	suite.Require().NoError(err)
	page, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(25), page.Total)
	suite.Equal(3, page.TotalPages)
	suite.Equal(2, page.Page)
	suite.True(page.HasNextPage())
	suite.True(page.HasPrevPage())
	suite.Require().Len(page.Orders, 10)
	for i, v := range page.Orders {
		suite.Equal(fmt.Sprintf("ORD-20240315-%04d", 15-i), v.Number, "newest first")
		suite.Len(v.Lines, 1)
	}

	query, err = queries.NewListOrdersQuery("Delivered", 1, 0)
	suite.Require().NoError(err)
	page, err = queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(5), page.Total)
	suite.Equal(1, page.TotalPages)
	suite.Len(page.Orders, 5)

	query, err = queries.NewListOrdersQuery("", 4, 10)
	suite.Require().NoError(err)
	page, err = queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(page.Orders)
	suite.Equal(int64(25), page.Total)
}

func (suite *QueriesIntegrationTestSuite) TestMenuQueries() {
	ctx := context.Background()
	tikka := suite.addItem("Paneer Tikka", catalog.Appetizer, "220.00", true)
	suite.addItem("Gulab Jamun", catalog.Dessert, "90.00", false)
	suite.addItem("Butter Naan", catalog.MainCourse, "45.00", true)

	suite.Run("list with filters", func() {
		available := true
		minPrice := decimal.RequireFromString("50")
		query, err := queries.NewListMenuItemsQuery(queries.MenuFilter{IsAvailable: &available, MinPrice: &minPrice})
		suite.Require().NoError(err)

		items, err := queries.NewListMenuItemsQueryHandler(suite.db).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(items, 1)
		suite.Equal("Paneer Tikka", items[0].Name)
		suite.Equal([]string{"paneer", "spices"}, items[0].Ingredients)
	})

	suite.Run("list all newest first", func() {
		query, err := queries.NewListMenuItemsQuery(queries.MenuFilter{})
		suite.Require().NoError(err)

		items, err := queries.NewListMenuItemsQueryHandler(suite.db).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(items, 3)
		suite.Equal("Butter Naan", items[0].Name)
	})

	suite.Run("search by name and ingredient ignoring case", func() {
		query, err := queries.NewSearchMenuItemsQuery("PANEER")
		suite.Require().NoError(err)

		items, err := queries.NewSearchMenuItemsQueryHandler(suite.db).Handle(ctx, query)
		suite.Require().NoError(err)
		suite.Require().Len(items, 2)
		suite.Equal("Paneer Tikka", items[0].Name, "name matches come first")
		suite.Equal("Butter Naan", items[1].Name)

		query, err = queries.NewSearchMenuItemsQuery("spices")
		suite.Require().NoError(err)
		items, err = queries.NewSearchMenuItemsQueryHandler(suite.db).Handle(ctx, query)
		suite.Require().NoError(err)
		suite.Len(items, 3)

		query, err = queries.NewSearchMenuItemsQuery("100%")
		suite.Require().NoError(err)
		items, err = queries.NewSearchMenuItemsQueryHandler(suite.db).Handle(ctx, query)
		suite.Require().NoError(err)
		suite.Empty(items)
	})

	suite.Run("get", func() {
		query, err := queries.NewGetMenuItemQuery(tikka.ID())
		suite.Require().NoError(err)

		view, err := queries.NewGetMenuItemQueryHandler(suite.db).Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal("220.00", view.Price.String())
		suite.Equal(catalog.Appetizer, view.Category)

		query, err = queries.NewGetMenuItemQuery(kernel.NewUUID())
		suite.Require().NoError(err)
		_, err = queries.NewGetMenuItemQueryHandler(suite.db).Handle(ctx, query)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

type orderLine struct {
	id       kernel.UUID
	quantity int
	price    string
}

func line(item *catalog.Item, quantity int, price string) orderLine {
	return orderLine{id: item.ID(), quantity: quantity, price: price}
}

func (suite *QueriesIntegrationTestSuite) topSelling(ctx context.Context, limit int) []services.ItemSales {
	query, err := queries.NewGetTopSellingItemsQuery(limit)
	suite.Require().NoError(err)
	report, err := queries.NewGetTopSellingItemsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	return report
}

// addItem inserts items one minute apart so "newest first" is deterministic.
func (suite *QueriesIntegrationTestSuite) addItem(name string, category catalog.Category, price string, available bool) *catalog.Item {
	var count int64
	suite.Require().NoError(suite.db.Table("menu_items").Count(&count).Error)

	item, err := catalog.NewItem(kernel.NewUUID(), catalog.Details{
		Name:        name,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		Ingredients: []string{"paneer", "spices"}[count%2 : 2],
		Available:   available,
	}, base.Add(time.Duration(count)*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.CatalogRepository().Add(context.Background(), item))
	return item
}

func (suite *QueriesIntegrationTestSuite) addOrder(seq int, status order.Status, lines ...orderLine) *order.Order {
	number, err := order.NewNumber(base, seq)
	suite.Require().NoError(err)

	built := make([]order.Line, 0, len(lines))
	for _, l := range lines {
		ol, lineErr := order.NewLine(l.id, l.quantity, kernel.MustMoney(l.price))
		suite.Require().NoError(lineErr)
		built = append(built, ol)
	}

	createdAt := base.Add(time.Duration(seq) * time.Second)
	o, err := order.NewOrder(kernel.NewUUID(), number, "Guest", seq%999+1, built, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.ChangeStatus(status, order.PermissivePolicy, createdAt))
	suite.Require().NoError(suite.uow.OrderRepository().Add(context.Background(), o))
	return o
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
