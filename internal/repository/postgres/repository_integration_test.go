package postgres_test

import (
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"order-review-svc/internal/configs"
	"order-review-svc/internal/models"
	pg "order-review-svc/internal/repository/postgres"
)

type pgEnv struct {
	DB *gorm.DB

	customers   *pg.CustomerPostgresRepo
	restaurants *pg.RestaurantPostgresRepo
	menu        *pg.MenuItemPostgresRepo
	orders      *pg.OrderPostgresRepo
	restReviews *pg.RestaurantReviewPostgresRepo
	dishReviews *pg.DishReviewPostgresRepo
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in -short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=orders",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	env := &pgEnv{}
	require.NoError(t, pool.Retry(func() error {
		db, err := pg.Open(configs.Config{
			PostgresHost:    "localhost",
			PostgresPort:    resource.GetPort("5432/tcp"),
			PostgresUser:    "app",
			PostgresPass:    "app",
			PostgresDB:      "orders",
			PostgresSSLMode: "disable",
		}.PgDSN())
		if err != nil {
			return err
		}
		env.DB = db
		return nil
	}))
	require.NoError(t, pg.Migrate(env.DB))

	env.customers = pg.NewCustomerPostgres(env.DB)
	env.restaurants = pg.NewRestaurantPostgres(env.DB)
	env.menu = pg.NewMenuItemPostgres(env.DB)
	env.orders = pg.NewOrderPostgres(env.DB)
	env.restReviews = pg.NewRestaurantReviewPostgres(env.DB)
	env.dishReviews = pg.NewDishReviewPostgres(env.DB)
	return env
}

func (e *pgEnv) seedCustomer(t *testing.T) models.Customer {
	t.Helper()
	c := models.Customer{
		Name:         gofakeit.Name(),
		CPF:          gofakeit.DigitN(11),
		Email:        gofakeit.Email(),
		PasswordHash: "hash",
		City:         gofakeit.City(),
	}
	require.NoError(t, e.customers.Save(&c))
	return c
}

func (e *pgEnv) seedRestaurant(t *testing.T) models.Restaurant {
	t.Helper()
	r := models.Restaurant{
		Name:         gofakeit.Company(),
		CNPJ:         gofakeit.DigitN(14),
		Email:        gofakeit.Email(),
		PasswordHash: "hash",
	}
	require.NoError(t, e.restaurants.Save(&r))
	return r
}

func (e *pgEnv) seedItem(t *testing.T, restaurantID uint, price string) models.MenuItem {
	t.Helper()
	m := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         gofakeit.Dessert(),
		Price:        decimal.RequireFromString(price),
	}
	require.NoError(t, e.menu.Save(&m))
	return m
}

func Test_Postgres_Directories_FindByKeys(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	got, err := env.customers.FindByEmail(c.Email)
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)

	got, err = env.customers.FindByCPF(c.CPF)
	require.NoError(t, err)
	require.Equal(t, c.Email, got.Email)

	_, err = env.customers.FindByID(c.ID + 1000)
	require.ErrorIs(t, err, pg.ErrNotFound)

	r := env.seedRestaurant(t)
	gotR, err := env.restaurants.FindByCNPJ(r.CNPJ)
	require.NoError(t, err)
	require.Equal(t, r.Name, gotR.Name)

	_, err = env.restaurants.FindByEmail("nobody@example.com")
	require.ErrorIs(t, err, pg.ErrNotFound)
}

func Test_Postgres_Customer_DuplicateEmail_Error(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	dup := models.Customer{Name: "x", CPF: gofakeit.DigitN(11), Email: c.Email, PasswordHash: "h"}
	require.Error(t, env.customers.Save(&dup))
}

func Test_Postgres_Menu_PriceRoundTrip(t *testing.T) {
	env := upPostgres(t)

	r := env.seedRestaurant(t)
	env.seedItem(t, r.ID, "12.50")
	env.seedItem(t, r.ID, "3.99")

	menu, err := env.menu.FindAllByRestaurant(r.ID)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	require.True(t, menu[0].Price.Equal(decimal.RequireFromString("12.5")))

	empty, err := env.menu.FindAllByRestaurant(r.ID + 1000)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Len(t, empty, 0)
}

func Test_Postgres_Menu_NegativePrice_Rejected(t *testing.T) {
	env := upPostgres(t)

	r := env.seedRestaurant(t)
	m := models.MenuItem{RestaurantID: r.ID, Name: "bad", Price: decimal.NewFromInt(-1)}
	require.Error(t, env.menu.Save(&m))
}

func Test_Postgres_Order_CreateAndFind(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r := env.seedRestaurant(t)
	a := env.seedItem(t, r.ID, "10.00")
	b := env.seedItem(t, r.ID, "4.00")

	o := models.Order{
		CustomerID:   c.ID,
		RestaurantID: r.ID,
		Status:       models.StatusNew,
		CreatedAt:    time.Now().UTC(),
		Lines: []models.OrderLine{
			{MenuItemID: a.ID, Quantity: 2, RemovedIngredients: "onion"},
			{MenuItemID: b.ID, Quantity: 1},
		},
	}
	require.NoError(t, env.orders.Save(&o))
	require.NotZero(t, o.ID)

	got, err := env.orders.FindByID(o.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusNew, got.Status)
	require.Len(t, got.Lines, 2)
	require.NotNil(t, got.Customer)
	require.Equal(t, c.Email, got.Customer.Email)
	require.True(t, got.Contains(a.ID))

	all, err := env.orders.FindAllByCustomer(c.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Lines, 2)

	_, err = env.orders.FindByID(o.ID + 1000)
	require.ErrorIs(t, err, pg.ErrNotFound)
}

func Test_Postgres_Order_InvalidLine_RollsBack(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r := env.seedRestaurant(t)
	a := env.seedItem(t, r.ID, "10.00")

	o := models.Order{
		CustomerID:   c.ID,
		RestaurantID: r.ID,
		Status:       models.StatusNew,
		CreatedAt:    time.Now().UTC(),
		Lines: []models.OrderLine{
			{MenuItemID: a.ID, Quantity: 1},
			{MenuItemID: a.ID + 1000, Quantity: 1},
		},
	}
	require.Error(t, env.orders.Save(&o))

	all, err := env.orders.FindAllByCustomer(c.ID)
	require.NoError(t, err)
	require.Len(t, all, 0)
}

func Test_Postgres_Order_StatusUpdate_WritesHistory(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r := env.seedRestaurant(t)
	a := env.seedItem(t, r.ID, "10.00")

	o := models.Order{
		CustomerID:   c.ID,
		RestaurantID: r.ID,
		Status:       models.StatusNew,
		CreatedAt:    time.Now().UTC(),
		Lines:        []models.OrderLine{{MenuItemID: a.ID, Quantity: 1}},
	}
	require.NoError(t, env.orders.Save(&o))

	stored, err := env.orders.FindByID(o.ID)
	require.NoError(t, err)
	stored.Status = models.StatusCompleted
	require.NoError(t, env.orders.Save(&stored))

	got, err := env.orders.FindByID(o.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, got.Status)
	require.Len(t, got.Lines, 1)

	history, err := env.orders.StatusHistory(o.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, models.StatusNew, history[0].FromStatus)
	require.Equal(t, models.StatusCompleted, history[0].ToStatus)
	require.Equal(t, c.Email, history[0].ChangedBy)

	missing := models.Order{ID: o.ID + 1000, Status: models.StatusCancelled}
	require.ErrorIs(t, env.orders.Save(&missing), pg.ErrNotFound)
}

func Test_Postgres_Reviews_SaveAndList(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r := env.seedRestaurant(t)
	a := env.seedItem(t, r.ID, "10.00")

	now := time.Now().UTC()
	require.NoError(t, env.restReviews.Save(&models.RestaurantReview{
		Score: 4.5, Comment: "good", RestaurantID: r.ID, CustomerID: c.ID, CreatedAt: now,
	}))
	require.NoError(t, env.dishReviews.Save(&models.DishReview{
		Score: 5, MenuItemID: a.ID, CustomerID: c.ID, CreatedAt: now,
	}))

	rr, err := env.restReviews.FindAllByRestaurant(r.ID)
	require.NoError(t, err)
	require.Len(t, rr, 1)
	require.Equal(t, 4.5, rr[0].Score)

	dr, err := env.dishReviews.FindAllByMenuItem(a.ID)
	require.NoError(t, err)
	require.Len(t, dr, 1)

	bad := models.DishReview{Score: 6, MenuItemID: a.ID, CustomerID: c.ID, CreatedAt: now}
	require.Error(t, env.dishReviews.Save(&bad))
}

func Test_Postgres_Delete_ReferencedRowsInUse(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r := env.seedRestaurant(t)
	ordered := env.seedItem(t, r.ID, "10.00")
	spare := env.seedItem(t, r.ID, "2.00")

	o := models.Order{
		CustomerID:   c.ID,
		RestaurantID: r.ID,
		Status:       models.StatusNew,
		CreatedAt:    time.Now().UTC(),
		Lines:        []models.OrderLine{{MenuItemID: ordered.ID, Quantity: 1}},
	}
	require.NoError(t, env.orders.Save(&o))

	require.ErrorIs(t, env.menu.Delete(&ordered), pg.ErrInUse)
	require.ErrorIs(t, env.customers.Delete(&c), pg.ErrInUse)
	require.ErrorIs(t, env.restaurants.Delete(&r), pg.ErrInUse)

	require.NoError(t, env.menu.Delete(&spare))
	_, err := env.menu.FindByID(spare.ID)
	require.ErrorIs(t, err, pg.ErrNotFound)

	_, err = env.menu.FindByID(ordered.ID)
	require.NoError(t, err)
}

func Test_Postgres_Restaurant_DeleteCascadesMenu(t *testing.T) {
	env := upPostgres(t)

	r := env.seedRestaurant(t)
	item := env.seedItem(t, r.ID, "5.00")

	require.NoError(t, env.restaurants.Delete(&r))
	_, err := env.menu.FindByID(item.ID)
	require.ErrorIs(t, err, pg.ErrNotFound)
}

func Test_Postgres_Order_LongStatusAndNote(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r := env.seedRestaurant(t)
	a := env.seedItem(t, r.ID, "10.00")

	o := models.Order{
		CustomerID:   c.ID,
		RestaurantID: r.ID,
		Status:       models.StatusNew,
		Note:         strings.Repeat("ring twice ", 40),
		CreatedAt:    time.Now().UTC(),
		Lines:        []models.OrderLine{{MenuItemID: a.ID, Quantity: models.MaxLineQuantity}},
	}
	require.NoError(t, env.orders.Save(&o))

	o.Status = models.Status(strings.Repeat("WAITING_FOR_COURIER_", 3))
	require.NoError(t, env.orders.Save(&o))

	got, err := env.orders.FindByID(o.ID)
	require.NoError(t, err)
	require.Equal(t, o.Status, got.Status)
	require.Equal(t, o.Note, got.Note)

	over := models.Order{
		CustomerID:   c.ID,
		RestaurantID: r.ID,
		Status:       models.StatusNew,
		CreatedAt:    time.Now().UTC(),
		Lines:        []models.OrderLine{{MenuItemID: a.ID, Quantity: models.MaxLineQuantity + 1}},
	}
	require.Error(t, env.orders.Save(&over))
}

func Test_Postgres_Reviews_FindAll(t *testing.T) {
	env := upPostgres(t)

	c := env.seedCustomer(t)
	r1 := env.seedRestaurant(t)
	r2 := env.seedRestaurant(t)
	a := env.seedItem(t, r1.ID, "10.00")

	now := time.Now().UTC()
	require.NoError(t, env.restReviews.Save(&models.RestaurantReview{Score: 3, RestaurantID: r1.ID, CustomerID: c.ID, CreatedAt: now}))
	require.NoError(t, env.restReviews.Save(&models.RestaurantReview{Score: 5, RestaurantID: r2.ID, CustomerID: c.ID, CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, env.dishReviews.Save(&models.DishReview{Score: 4, MenuItemID: a.ID, CustomerID: c.ID, CreatedAt: now}))

	rr, err := env.restReviews.FindAll()
	require.NoError(t, err)
	require.Len(t, rr, 2)
	require.Equal(t, r2.ID, rr[0].RestaurantID)

	dr, err := env.dishReviews.FindAll()
	require.NoError(t, err)
	require.Len(t, dr, 1)
}
